package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Elastic ElasticConfig
	CMS     CMSConfig
	Auth    AuthConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Site    SiteConfig
	Worker  WorkerConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	RequestTimeout time.Duration
	SyncTimeout    time.Duration
}

type LogConfig struct {
	Level string
}

// ElasticConfig - connection to the search index that holds businesses, regions and tags
type ElasticConfig struct {
	URL           string
	Username      string
	Password      string
	Backend       string // elasticsearch | memory
	BusinessIndex string
	RegionIndex   string
	TagIndex      string
	MaxResultSize int
}

// CMSConfig - upstream WordPress REST API
type CMSConfig struct {
	BaseURL        string
	APIPartialURL  string
	BearerToken    string
	RequestTimeout time.Duration
	WebhookKey     string
	WebhookValue   string
}

type AuthConfig struct {
	APIKey string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RegionsTTL      time.Duration
	PagesTTL        time.Duration
	PageTTL         time.Duration
	PageTypesTTL    time.Duration
	MediaTTL        time.Duration
	TagGroupsTTL    time.Duration
	TranslationsTTL time.Duration
	SitemapTTL      time.Duration
}

type SiteConfig struct {
	Name            string
	Host            string
	DefaultLanguage string
	ItemsPerPage    int
	Timezone        string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	MaxRetries    int
}

func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),

			RequestTimeout: time.Duration(v.GetInt("API_REQUEST_TIMEOUT")) * time.Second,
			SyncTimeout:    time.Duration(v.GetInt("API_SYNC_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Elastic: ElasticConfig{
			URL:           v.GetString("ELASTIC_URL"),
			Username:      v.GetString("ELASTIC_USERNAME"),
			Password:      v.GetString("ELASTIC_PASSWORD"),
			Backend:       strings.ToLower(v.GetString("SEARCH_BACKEND")),
			BusinessIndex: v.GetString("ELASTIC_BUSINESS_INDEX"),
			RegionIndex:   v.GetString("ELASTIC_REGION_INDEX"),
			TagIndex:      v.GetString("ELASTIC_TAG_INDEX"),
			MaxResultSize: v.GetInt("ELASTIC_MAX_RESULT_SIZE"),
		},
		CMS: CMSConfig{
			BaseURL:        strings.TrimRight(v.GetString("CMS_BASE_URL"), "/"),
			APIPartialURL:  strings.Trim(v.GetString("CMS_API_PARTIAL_URL"), "/"),
			BearerToken:    v.GetString("CMS_BEARER_TOKEN"),
			RequestTimeout: time.Duration(v.GetInt("CMS_REQUEST_TIMEOUT")) * time.Second,
			WebhookKey:     v.GetString("CMS_WEBHOOK_KEY"),
			WebhookValue:   v.GetString("CMS_WEBHOOK_VALUE"),
		},
		Auth: AuthConfig{
			APIKey: v.GetString("API_KEY"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RegionsTTL:      time.Duration(v.GetInt("CACHE_REGIONS_TTL")) * time.Second,
			PagesTTL:        time.Duration(v.GetInt("CACHE_PAGES_TTL")) * time.Second,
			PageTTL:         time.Duration(v.GetInt("CACHE_PAGE_TTL")) * time.Second,
			PageTypesTTL:    time.Duration(v.GetInt("CACHE_PAGE_TYPES_TTL")) * time.Second,
			MediaTTL:        time.Duration(v.GetInt("CACHE_MEDIA_TTL")) * time.Second,
			TagGroupsTTL:    time.Duration(v.GetInt("CACHE_TAG_GROUPS_TTL")) * time.Second,
			TranslationsTTL: time.Duration(v.GetInt("CACHE_TRANSLATIONS_TTL")) * time.Second,
			SitemapTTL:      time.Duration(v.GetInt("CACHE_SITEMAP_TTL")) * time.Second,
		},
		Site: SiteConfig{
			Name:            v.GetString("SITE_NAME"),
			Host:            strings.TrimRight(v.GetString("SITE_HOST"), "/"),
			DefaultLanguage: v.GetString("SITE_DEFAULT_LANGUAGE"),
			ItemsPerPage:    v.GetInt("SITE_ITEMS_PER_PAGE"),
			Timezone:        v.GetString("SITE_TIMEZONE"),
		},
		Worker: WorkerConfig{
			Enabled:       v.GetBool("WORKER_ENABLED"),
			ConsumerGroup: v.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:    v.GetInt("WORKER_MAX_RETRIES"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_REQUEST_TIMEOUT", 30)
	v.SetDefault("API_SYNC_TIMEOUT", 10*60)
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("ELASTIC_URL", "http://localhost:9200")
	v.SetDefault("SEARCH_BACKEND", "elasticsearch")
	v.SetDefault("ELASTIC_BUSINESS_INDEX", "sk-businesses-api")
	v.SetDefault("ELASTIC_REGION_INDEX", "sk-region")
	v.SetDefault("ELASTIC_TAG_INDEX", "sk-tag-api")
	v.SetDefault("ELASTIC_MAX_RESULT_SIZE", 3000)

	v.SetDefault("CMS_API_PARTIAL_URL", "wp-json/wp/v2")
	v.SetDefault("CMS_REQUEST_TIMEOUT", 30)
	v.SetDefault("CMS_WEBHOOK_KEY", "x-wp-webhook-key")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CACHE_REGIONS_TTL", 24*60*60)
	v.SetDefault("CACHE_PAGES_TTL", 24*60*60)
	v.SetDefault("CACHE_PAGE_TTL", 24*60*60)
	v.SetDefault("CACHE_PAGE_TYPES_TTL", 24*60*60)
	v.SetDefault("CACHE_MEDIA_TTL", 30*60)
	v.SetDefault("CACHE_TAG_GROUPS_TTL", 10*60)
	v.SetDefault("CACHE_TRANSLATIONS_TTL", 30*60)
	v.SetDefault("CACHE_SITEMAP_TTL", 24*60*60)

	v.SetDefault("SITE_NAME", "Smarta Kartan")
	v.SetDefault("SITE_HOST", "https://www.smartakartan.se")
	v.SetDefault("SITE_DEFAULT_LANGUAGE", "sv")
	v.SetDefault("SITE_ITEMS_PER_PAGE", 12)
	v.SetDefault("SITE_TIMEZONE", "Europe/Stockholm")

	v.SetDefault("WORKER_CONSUMER_GROUP", "index-sync-workers")
	v.SetDefault("WORKER_MAX_RETRIES", 3)
}

func (c *Config) validate() error {
	switch c.Elastic.Backend {
	case "elasticsearch", "memory":
	default:
		return fmt.Errorf("SEARCH_BACKEND must be elasticsearch or memory, got %q", c.Elastic.Backend)
	}
	if c.Site.ItemsPerPage <= 0 {
		return fmt.Errorf("SITE_ITEMS_PER_PAGE must be positive")
	}
	if c.Elastic.MaxResultSize <= 0 {
		return fmt.Errorf("ELASTIC_MAX_RESULT_SIZE must be positive")
	}
	if _, err := time.LoadLocation(c.Site.Timezone); err != nil {
		return fmt.Errorf("SITE_TIMEZONE %q: %w", c.Site.Timezone, err)
	}
	return nil
}

// Location - timezone used to evaluate opening hours
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Site.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
