package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/config"
	"github.com/smartmap-web/internal/domain"
)

const (
	maxPerPage = "100"

	headerTotal      = "X-WP-Total"
	headerTotalPages = "X-WP-TotalPages"

	pageFields        = "id,modified,status,link,slug,title,content.rendered,page_type"
	regionFields      = "id,modified,status,link,title,url_path,pages_api_path,businesses_api_path,language_code,welcome_message,region_menu_order,hide"
	pageTypeFields    = "id,template_name,typename"
	tagFields         = "id,title,slug,link,status,grupp"
	tagGroupFields    = "id,title,slug,link,taggar,status"
	translationFields = "id,status,link,title,translation_text"
)

// errNotFound - CMS ответил 404 на запрос одной сущности
var errNotFound = errors.New("cms entity not found")

// Client - клиент WordPress REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	partialURL string
	token      string
	logger     *zap.Logger
}

// NewClient создаёт клиент CMS
func NewClient(cfg *config.CMSConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		partialURL: cfg.APIPartialURL,
		token:      cfg.BearerToken,
		logger:     logger,
	}
}

// BaseURL - адрес CMS без завершающего слеша
func (c *Client) BaseURL() string {
	return c.baseURL
}

// tokenSuffix - последние 4 символа токена для логов
func (c *Client) tokenSuffix() string {
	if len(c.token) <= 4 {
		return c.token
	}
	return c.token[len(c.token)-4:]
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + c.partialURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get выполняет GET и декодирует нормализованное тело в out
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) (http.Header, error) {
	endpoint := c.endpoint(path, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("CMS request failed",
			zap.String("token", c.tokenSuffix()),
			zap.String("url", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("cms request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read cms response %s: %w", path, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return resp.Header, errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("CMS API returned error",
			zap.String("token", c.tokenSuffix()),
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("cms API error: status %d, path %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(normalizeBody(body), out); err != nil {
		c.logger.Error("Failed to decode CMS response",
			zap.String("url", endpoint),
			zap.Error(err))
		return nil, fmt.Errorf("decode cms response %s: %w", path, err)
	}

	return resp.Header, nil
}

// getOne загружает одну сущность; 404 даёт nil без ошибки
func getOne[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	var item T
	if _, err := c.get(ctx, path, query, &item); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// getAll загружает список по 100 записей, проходя по X-WP-TotalPages
func getAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("per_page", maxPerPage)

	var items []T
	header, err := c.get(ctx, path, query, &items)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}

	total, totalPages := paginationHeaders(header)
	for page := 2; page <= totalPages; page++ {
		query.Set("page", strconv.Itoa(page))

		var next []T
		if _, err := c.get(ctx, path, query, &next); err != nil {
			return nil, err
		}
		items = append(items, next...)
	}

	if total >= 0 && total != len(items) {
		c.logger.Warn("CMS list size differs from X-WP-Total",
			zap.String("path", path),
			zap.Int("total", total),
			zap.Int("received", len(items)))
	}

	return items, nil
}

// paginationHeaders возвращает -1 для отсутствующих заголовков
func paginationHeaders(h http.Header) (total, totalPages int) {
	total, totalPages = -1, -1
	if h == nil {
		return
	}
	if v, err := strconv.Atoi(h.Get(headerTotal)); err == nil {
		total = v
	}
	if v, err := strconv.Atoi(h.Get(headerTotalPages)); err == nil {
		totalPages = v
	}
	return
}

func fields(list string) url.Values {
	return url.Values{"_fields": []string{list}}
}

// FetchPages - все опубликованные страницы api path
func (c *Client) FetchPages(ctx context.Context, pageAPIPath string) ([]domain.Page, error) {
	c.logger.Info("Get pages from CMS", zap.String("path", pageAPIPath))
	pages, err := getAll[domain.Page](ctx, c, pageAPIPath, fields(pageFields))
	if err != nil {
		return nil, err
	}

	published := make([]domain.Page, 0, len(pages))
	for _, p := range pages {
		if p.Status == domain.StatusPublish {
			published = append(published, p)
		}
	}
	return published, nil
}

func (c *Client) FetchPage(ctx context.Context, pageID int, pageAPIPath string) (*domain.Page, error) {
	if pageID <= 0 {
		return nil, nil
	}
	if pageAPIPath == "" {
		pageAPIPath = domain.DefaultPageAPIPath
	}
	c.logger.Info("Get page from CMS", zap.Int("id", pageID))
	return getOne[domain.Page](ctx, c, pageAPIPath+"/"+strconv.Itoa(pageID), fields(pageFields))
}

func (c *Client) FetchRegions(ctx context.Context) ([]domain.CmsRegion, error) {
	c.logger.Info("Get regions from CMS")
	return getAll[domain.CmsRegion](ctx, c, "region", fields(regionFields))
}

func (c *Client) FetchRegion(ctx context.Context, id int) (*domain.CmsRegion, error) {
	return getOne[domain.CmsRegion](ctx, c, "region/"+strconv.Itoa(id), fields(regionFields))
}

func (c *Client) FetchBusinesses(ctx context.Context, businessAPIPath string) ([]domain.CmsBusiness, error) {
	return getAll[domain.CmsBusiness](ctx, c, businessAPIPath, nil)
}

func (c *Client) FetchBusiness(ctx context.Context, id int, businessAPIPath string) (*domain.CmsBusiness, error) {
	if businessAPIPath == "" {
		businessAPIPath = domain.DefaultBusinessAPIPath
	}
	return getOne[domain.CmsBusiness](ctx, c, businessAPIPath+"/"+strconv.Itoa(id), nil)
}

func (c *Client) FetchPageTypes(ctx context.Context) ([]domain.PageType, error) {
	return getAll[domain.PageType](ctx, c, "page_type", fields(pageTypeFields))
}

func (c *Client) FetchMediaList(ctx context.Context) ([]domain.Media, error) {
	return getAll[domain.Media](ctx, c, "media", nil)
}

func (c *Client) FetchTag(ctx context.Context, id int) (*domain.CmsTag, error) {
	return getOne[domain.CmsTag](ctx, c, "tagg/"+strconv.Itoa(id), fields(tagFields))
}

func (c *Client) FetchTags(ctx context.Context) ([]domain.CmsTag, error) {
	return getAll[domain.CmsTag](ctx, c, "tagg", fields(tagFields))
}

func (c *Client) FetchTagGroups(ctx context.Context) ([]domain.TagGroup, error) {
	return getAll[domain.TagGroup](ctx, c, "tagg_grupp", fields(tagGroupFields))
}

// FetchTranslations проставляет languageCode по ссылке, по умолчанию sv
func (c *Client) FetchTranslations(ctx context.Context) ([]domain.Translation, error) {
	c.logger.Info("Get translations from CMS")
	items, err := getAll[domain.Translation](ctx, c, "translations", fields(translationFields))
	if err != nil {
		return nil, err
	}

	languages := domain.SupportedLanguages()
	for i := range items {
		code := domain.LanguageFromLink(languages, items[i].Link)
		if code == "" {
			code = domain.DefaultLanguage(languages)
		}
		items[i].LanguageCode = code
	}
	return items, nil
}
