package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/repository/memory"
	"github.com/smartmap-web/internal/repository/search"
)

// MockContentRepository is a mock of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetLanguages(ctx context.Context) ([]domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}

func (m *MockContentRepository) GetTranslations(ctx context.Context) ([]domain.Translation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

func (m *MockContentRepository) GetTranslationsByPrefix(ctx context.Context, languageCode, keyPrefix string) (map[string]string, error) {
	args := m.Called(ctx, languageCode, keyPrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockContentRepository) RemoveTranslationsCache(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockContentRepository) GetPages(ctx context.Context, languageCode, pageAPIPath string) ([]domain.Page, error) {
	args := m.Called(ctx, languageCode, pageAPIPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Page), args.Error(1)
}

func (m *MockContentRepository) GetPage(ctx context.Context, pageID int, pageAPIPath string) (*domain.Page, error) {
	args := m.Called(ctx, pageID, pageAPIPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page), args.Error(1)
}

func (m *MockContentRepository) RemovePageCache(ctx context.Context, pageID int) error {
	return m.Called(ctx, pageID).Error(0)
}

func (m *MockContentRepository) RemovePagesCache(ctx context.Context, pageAPIPath string) error {
	return m.Called(ctx, pageAPIPath).Error(0)
}

func (m *MockContentRepository) GetRegions(ctx context.Context, languageCode string, allLanguages bool) ([]domain.CmsRegion, error) {
	args := m.Called(ctx, languageCode, allLanguages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CmsRegion), args.Error(1)
}

func (m *MockContentRepository) GetRegion(ctx context.Context, id int) (*domain.CmsRegion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CmsRegion), args.Error(1)
}

func (m *MockContentRepository) GetRegionList(ctx context.Context, urlPath, languageCode string) (*domain.RegionList, error) {
	args := m.Called(ctx, urlPath, languageCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegionList), args.Error(1)
}

func (m *MockContentRepository) GetBusinesses(ctx context.Context, businessAPIPath string) ([]domain.CmsBusiness, error) {
	args := m.Called(ctx, businessAPIPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CmsBusiness), args.Error(1)
}

func (m *MockContentRepository) GetBusiness(ctx context.Context, id int, businessAPIPath string) (*domain.CmsBusiness, error) {
	args := m.Called(ctx, id, businessAPIPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CmsBusiness), args.Error(1)
}

func (m *MockContentRepository) GetPageTypes(ctx context.Context) ([]domain.PageType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PageType), args.Error(1)
}

func (m *MockContentRepository) GetMediaList(ctx context.Context) ([]domain.Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Media), args.Error(1)
}

func (m *MockContentRepository) GetTag(ctx context.Context, id int) (*domain.CmsTag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CmsTag), args.Error(1)
}

func (m *MockContentRepository) GetTags(ctx context.Context, languageCode string) ([]domain.CmsTag, error) {
	args := m.Called(ctx, languageCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CmsTag), args.Error(1)
}

func (m *MockContentRepository) GetTagGroups(ctx context.Context) ([]domain.TagGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TagGroup), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

// indexes - search repositories over one in-memory store
type indexes struct {
	store      *memory.Store
	businesses *search.BusinessRepository
	regions    *search.RegionRepository
	tags       *search.TagRepository
}

func newIndexes(t *testing.T) *indexes {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewStore(logger)
	return &indexes{
		store:      store,
		businesses: search.NewBusinessRepository(store, "sk-businesses-api", domain.MaxResultSize, time.UTC, logger),
		regions:    search.NewRegionRepository(store, "sk-region", domain.MaxResultSize, logger),
		tags:       search.NewTagRepository(store, "sk-tag-api", domain.MaxResultSize, logger),
	}
}

func (ix *indexes) seedRegions(t *testing.T, regions ...domain.Region) {
	t.Helper()
	require.NoError(t, ix.regions.Insert(context.Background(), regions))
}

func (ix *indexes) seedBusinesses(t *testing.T, businesses ...domain.Business) {
	t.Helper()
	require.NoError(t, ix.businesses.Insert(context.Background(), businesses))
}

func (ix *indexes) seedTags(t *testing.T, tags ...domain.Tag) {
	t.Helper()
	require.NoError(t, ix.tags.Insert(context.Background(), tags))
}

func testRegions() []domain.Region {
	return []domain.Region{
		{ID: 7, Name: "Göteborg", LanguageCode: "sv", URLPath: "goteborg", PagesAPIPath: "goteborg_page", BusinessesAPIPath: "goteborg_business", MenuOrder: 1, WelcomeMessage: "Välkommen till Göteborg"},
		{ID: 8, Name: "Global", LanguageCode: "sv", URLPath: "global", PagesAPIPath: domain.DefaultPageAPIPath, BusinessesAPIPath: domain.DefaultBusinessAPIPath, MenuOrder: 0, WelcomeMessage: "Välkommen"},
		{ID: 9, Name: "Gothenburg", LanguageCode: "en", URLPath: "gothenburg", PagesAPIPath: "goteborg_page", BusinessesAPIPath: "goteborg_business", MenuOrder: 1},
		{ID: 10, Name: "Dold", LanguageCode: "sv", URLPath: "dold", Hidden: true},
	}
}

func boolPtr(v bool) *bool { return &v }
