package cms

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/config"
	"github.com/smartmap-web/internal/domain"
)

type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[key], nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok, nil
}

type brokenCache struct{ *memCache }

func (c *brokenCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("redis down")
}

// fakeSource counts calls per operation
type fakeSource struct {
	mu           sync.Mutex
	calls        map[string]int
	pages        []domain.Page
	regions      []domain.CmsRegion
	tags         []domain.CmsTag
	translations []domain.Translation
	err          error
}

func (s *fakeSource) hit(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[name]++
}

func (s *fakeSource) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *fakeSource) FetchPages(ctx context.Context, pageAPIPath string) ([]domain.Page, error) {
	s.hit("pages:" + pageAPIPath)
	return s.pages, s.err
}

func (s *fakeSource) FetchPage(ctx context.Context, pageID int, pageAPIPath string) (*domain.Page, error) {
	s.hit("page")
	for _, p := range s.pages {
		if p.ID == pageID {
			p := p
			return &p, nil
		}
	}
	return nil, s.err
}

func (s *fakeSource) FetchRegions(ctx context.Context) ([]domain.CmsRegion, error) {
	s.hit("regions")
	return s.regions, s.err
}

func (s *fakeSource) FetchRegion(ctx context.Context, id int) (*domain.CmsRegion, error) {
	s.hit("region")
	return nil, s.err
}

func (s *fakeSource) FetchBusinesses(ctx context.Context, businessAPIPath string) ([]domain.CmsBusiness, error) {
	s.hit("businesses")
	return nil, s.err
}

func (s *fakeSource) FetchBusiness(ctx context.Context, id int, businessAPIPath string) (*domain.CmsBusiness, error) {
	s.hit("business")
	return nil, s.err
}

func (s *fakeSource) FetchPageTypes(ctx context.Context) ([]domain.PageType, error) {
	s.hit("pagetypes")
	return []domain.PageType{{ID: 1, TemplateName: "BusinessPage", TypeName: domain.BusinessPageTypeName}}, s.err
}

func (s *fakeSource) FetchMediaList(ctx context.Context) ([]domain.Media, error) {
	s.hit("media")
	return nil, s.err
}

func (s *fakeSource) FetchTag(ctx context.Context, id int) (*domain.CmsTag, error) {
	s.hit("tag")
	return nil, s.err
}

func (s *fakeSource) FetchTags(ctx context.Context) ([]domain.CmsTag, error) {
	s.hit("tags")
	return s.tags, s.err
}

func (s *fakeSource) FetchTagGroups(ctx context.Context) ([]domain.TagGroup, error) {
	s.hit("taggroups")
	return nil, s.err
}

func (s *fakeSource) FetchTranslations(ctx context.Context) ([]domain.Translation, error) {
	s.hit("translations")
	return s.translations, s.err
}

func testTTL() config.CacheConfig {
	return config.CacheConfig{
		RegionsTTL:      time.Hour,
		PagesTTL:        time.Hour,
		PageTTL:         time.Hour,
		PageTypesTTL:    time.Hour,
		MediaTTL:        time.Hour,
		TagGroupsTTL:    time.Hour,
		TranslationsTTL: time.Hour,
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestProxy_PagesAreCachedPerPathAndFilteredByLanguage(t *testing.T) {
	src := &fakeSource{pages: []domain.Page{
		{ID: 1, Link: "http://cms/index.php/om-oss/", Slug: "om-oss"},
		{ID: 2, Link: "http://cms/index.php/en/about/", Slug: "about"},
	}}
	proxy := NewProxy(src, newMemCache(), testTTL(), zap.NewNop())
	ctx := context.Background()

	sv, err := proxy.GetPages(ctx, "sv", "global_page")
	require.NoError(t, err)
	require.Len(t, sv, 1)
	assert.Equal(t, "om-oss", sv[0].Slug)

	en, err := proxy.GetPages(ctx, "en", "global_page")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "about", en[0].Slug)

	assert.Equal(t, 1, src.count("pages:global_page"))

	require.NoError(t, proxy.RemovePagesCache(ctx, "global_page"))
	_, err = proxy.GetPages(ctx, "sv", "global_page")
	require.NoError(t, err)
	assert.Equal(t, 2, src.count("pages:global_page"))
}

func TestProxy_PageCacheInvalidation(t *testing.T) {
	src := &fakeSource{pages: []domain.Page{{ID: 5, Slug: "kontakt"}}}
	proxy := NewProxy(src, newMemCache(), testTTL(), zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		page, err := proxy.GetPage(ctx, 5, "")
		require.NoError(t, err)
		assert.Equal(t, "kontakt", page.Slug)
	}
	assert.Equal(t, 1, src.count("page"))

	require.NoError(t, proxy.RemovePageCache(ctx, 5))
	_, err := proxy.GetPage(ctx, 5, "")
	require.NoError(t, err)
	assert.Equal(t, 2, src.count("page"))
}

func TestProxy_RegionsFilter(t *testing.T) {
	src := &fakeSource{regions: []domain.CmsRegion{
		{ID: 1, Status: "publish", Link: "http://cms/region/goteborg/", URLPath: "goteborg"},
		{ID: 2, Status: "publish", Link: "http://cms/en/region/gothenburg/", URLPath: "gothenburg"},
		{ID: 3, Status: "draft", Link: "http://cms/region/malmo/", URLPath: "malmo"},
		{ID: 4, Status: "publish", Link: "http://cms/region/dold/", URLPath: "dold", Hide: strPtr("1")},
	}}
	proxy := NewProxy(src, newMemCache(), testTTL(), zap.NewNop())
	ctx := context.Background()

	sv, err := proxy.GetRegions(ctx, "", false)
	require.NoError(t, err)
	require.Len(t, sv, 1)
	assert.Equal(t, 1, sv[0].ID)

	all, err := proxy.GetRegions(ctx, "sv", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.Equal(t, 1, src.count("regions"))
}

func TestProxy_GetRegionList(t *testing.T) {
	src := &fakeSource{regions: []domain.CmsRegion{
		{ID: 1, Status: "publish", Link: "http://cms/region/a/", URLPath: "a"},
		{ID: 2, Status: "publish", Link: "http://cms/region/b/", URLPath: "b", MenuOrder: intPtr(2),
			PagesAPIPath: "b_page", BusinessesAPIPath: "b_business", Title: domain.Rendered{Rendered: "B-stad"}},
		{ID: 3, Status: "publish", Link: "http://cms/region/c/", URLPath: "c", MenuOrder: intPtr(1)},
	}}
	proxy := NewProxy(src, newMemCache(), testTTL(), zap.NewNop())

	list, err := proxy.GetRegionList(context.Background(), "b", "sv")
	require.NoError(t, err)
	assert.Equal(t, "b_page", list.PagesAPIPath)
	assert.Equal(t, "b_business", list.BusinessAPIPath)
	assert.Equal(t, "B-stad", list.Title)

	ids := make([]int, 0, len(list.Regions))
	for _, r := range list.Regions {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{3, 2, 1}, ids)

	missing, err := proxy.GetRegionList(context.Background(), "nowhere", "sv")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPageAPIPath, missing.PagesAPIPath)
	assert.Equal(t, domain.DefaultBusinessAPIPath, missing.BusinessAPIPath)
	assert.Empty(t, missing.Title)
}

func TestProxy_TranslationsByPrefix(t *testing.T) {
	src := &fakeSource{translations: []domain.Translation{
		{Title: domain.Rendered{Rendered: "business.search"}, TranslationText: "Sök", LanguageCode: "sv"},
		{Title: domain.Rendered{Rendered: "business.search"}, TranslationText: "Search", LanguageCode: "en"},
		{Title: domain.Rendered{Rendered: "menu.home"}, TranslationText: "Hem", LanguageCode: "sv"},
	}}
	proxy := NewProxy(src, newMemCache(), testTTL(), zap.NewNop())

	got, err := proxy.GetTranslationsByPrefix(context.Background(), "", "business.")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"business.search": "Sök"}, got)
}

func TestProxy_TagsFilteredByLanguageWithoutCache(t *testing.T) {
	src := &fakeSource{tags: []domain.CmsTag{
		{ID: 1, Status: "publish", Link: "http://cms/tagg/mat/"},
		{ID: 2, Status: "publish", Link: "http://cms/en/tagg/food/"},
		{ID: 3, Status: "draft", Link: "http://cms/tagg/utkast/"},
	}}
	proxy := NewProxy(src, newMemCache(), testTTL(), zap.NewNop())
	ctx := context.Background()

	en, err := proxy.GetTags(ctx, "en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, 2, en[0].ID)

	_, err = proxy.GetTags(ctx, "sv")
	require.NoError(t, err)
	assert.Equal(t, 2, src.count("tags"))
}

func TestProxy_CacheFailureFallsBackToSource(t *testing.T) {
	src := &fakeSource{}
	proxy := NewProxy(src, &brokenCache{memCache: newMemCache()}, testTTL(), zap.NewNop())

	types, err := proxy.GetPageTypes(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

func TestProxy_SourceErrorIsNotCached(t *testing.T) {
	src := &fakeSource{err: errors.New("cms down")}
	cache := newMemCache()
	proxy := NewProxy(src, cache, testTTL(), zap.NewNop())
	ctx := context.Background()

	_, err := proxy.GetTagGroups(ctx)
	require.Error(t, err)

	exists, _ := cache.Exists(ctx, keyTagGroups)
	assert.False(t, exists)
}

func TestProxy_ConcurrentMissesLoadOnce(t *testing.T) {
	src := &slowSource{release: make(chan struct{})}
	proxy := NewProxy(src, newMemCache(), testTTL(), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := proxy.GetMediaList(context.Background())
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.LessOrEqual(t, src.count("media"), 2)
}

// slowSource blocks media loads until released
type slowSource struct {
	fakeSource
	release chan struct{}
}

func (s *slowSource) FetchMediaList(ctx context.Context) ([]domain.Media, error) {
	s.hit("media")
	<-s.release
	return []domain.Media{{ID: 1}}, nil
}
