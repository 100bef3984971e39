package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/usecase"
	"github.com/smartmap-web/internal/usecase/dto"
)

func testTagGroups() []domain.TagGroup {
	return []domain.TagGroup{
		{ID: 1, Slug: domain.MainTagGroupSlug, Taggar: []int{1, 2, 3}},
		{ID: 2, Slug: domain.SubTagGroupSlug, Taggar: []int{4}},
		{ID: 3, Slug: domain.TransactionTagGroupSlug, Taggar: []int{5, 6}},
	}
}

func testTags() []domain.Tag {
	return []domain.Tag{
		{ID: 1, Name: "Mat", LanguageCode: "sv"},
		{ID: 2, Name: "Kläder", LanguageCode: "sv"},
		{ID: 3, Name: "Verktyg", LanguageCode: "sv"},
		{ID: 4, Name: "Cyklar", LanguageCode: "sv"},
		{ID: 5, Name: "Byta", LanguageCode: "sv"},
		{ID: 6, Name: "Låna", LanguageCode: "sv"},
		{ID: 11, Name: "Food", LanguageCode: "en"},
	}
}

func catalogBusiness(id, cityID int, tags ...string) domain.Business {
	return domain.Business{
		ID:               id,
		Header:           "Business",
		ShortDescription: "Short",
		LanguageCode:     "sv",
		DetailPageLink:   "/goteborg/business",
		City:             &domain.IDAndName{ID: cityID, Name: "Göteborg"},
		Tags:             tags,
		AddressAndCoordinates: []domain.AddressAndCoordinate{
			{Latitude: 57.7, Longitude: 11.97, Address: "Kungsgatan 1"},
		},
	}
}

func newBusinessUseCase(t *testing.T, itemsPerPage int) (*usecase.BusinessUseCase, *MockContentRepository, *indexes) {
	t.Helper()
	content := new(MockContentRepository)
	content.On("GetTagGroups", mock.Anything).Return(testTagGroups(), nil).Maybe()

	ix := newIndexes(t)
	ix.seedRegions(t, testRegions()...)
	ix.seedTags(t, testTags()...)

	uc := usecase.NewBusinessUseCase(ix.businesses, ix.regions, ix.tags, content, itemsPerPage, zap.NewNop())
	return uc, content, ix
}

func itemIDs(items []dto.BusinessItem) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestBusinessUseCase_GetBusinesses_Paging(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 2)
	for id := 1; id <= 5; id++ {
		ix.seedBusinesses(t, catalogBusiness(id, 7))
	}

	first, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{Sorting: domain.SortLatestAdded})
	require.NoError(t, err)
	second, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{Page: 1, Sorting: domain.SortLatestAdded})
	require.NoError(t, err)
	last, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{Page: 2, Sorting: domain.SortLatestAdded})
	require.NoError(t, err)

	assert.Equal(t, int64(5), first.Total)
	assert.Equal(t, 2, first.ItemsPerPage)
	assert.Len(t, first.Items, 2)
	assert.Len(t, second.Items, 2)
	assert.Len(t, last.Items, 1)
	assert.NotContains(t, itemIDs(second.Items), first.Items[0].ID)
}

func TestBusinessUseCase_GetBusinesses_RegionByName(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 12)
	ix.seedBusinesses(t, catalogBusiness(1, 7), catalogBusiness(2, 8))

	tests := []struct {
		name   string
		region string
		want   []int
	}{
		{"display name", "göteborg", []int{1}},
		{"url path", "global", []int{2}},
		{"empty searches all regions", "", []int{1, 2}},
		{"unknown searches all regions", "malmo", []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{Region: tt.region})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, itemIDs(resp.Items))
		})
	}
}

func TestBusinessUseCase_GetBusinesses_HiddenRegionExcluded(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 12)
	ix.seedBusinesses(t, catalogBusiness(1, 7), catalogBusiness(2, 10))

	resp, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, itemIDs(resp.Items))
}

func TestBusinessUseCase_GetBusinesses_FacetTags(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 12)
	ix.seedBusinesses(t,
		catalogBusiness(1, 7, "Mat", "Cyklar"),
		catalogBusiness(2, 7, "Mat", "Kläder"),
		catalogBusiness(3, 7, "Verktyg"),
	)

	resp, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{})
	require.NoError(t, err)

	// main group only, sorted by name descending
	require.Len(t, resp.FilterTags, 3)
	assert.Equal(t, dto.TagItem{ID: 3, Name: "Verktyg", Count: 1, Type: domain.TagTypeMain}, resp.FilterTags[0])
	assert.Equal(t, dto.TagItem{ID: 1, Name: "Mat", Count: 2, Type: domain.TagTypeMain}, resp.FilterTags[1])
	assert.Equal(t, dto.TagItem{ID: 2, Name: "Kläder", Count: 1, Type: domain.TagTypeMain}, resp.FilterTags[2])
}

func TestBusinessUseCase_GetBusinesses_SubTagsWhenFiltered(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 12)
	ix.seedBusinesses(t,
		catalogBusiness(1, 7, "Mat", "Cyklar"),
		catalogBusiness(2, 7, "Verktyg"),
	)

	resp, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{Tags: []string{"Mat"}})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, itemIDs(resp.Items))
	require.Len(t, resp.FilterTags, 2)
	assert.Equal(t, "Mat", resp.FilterTags[0].Name)
	assert.Equal(t, domain.TagTypeMain, resp.FilterTags[0].Type)
	assert.Equal(t, "Cyklar", resp.FilterTags[1].Name)
	assert.Equal(t, domain.TagTypeSub, resp.FilterTags[1].Type)
}

func TestBusinessUseCase_GetBusinesses_Digital(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 12)
	online := catalogBusiness(1, 7)
	online.OnlineOnly = boolPtr(true)
	ix.seedBusinesses(t, online, catalogBusiness(2, 7))

	digital, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{Digital: true})
	require.NoError(t, err)
	all, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, itemIDs(digital.Items))
	assert.True(t, digital.Items[0].OnlineOnly)
	assert.Len(t, all.Items, 2)
}

func TestBusinessUseCase_GetBusinesses_ItemMapping(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 12)
	b := catalogBusiness(1, 7, "Mat")
	b.Area = "Centrum"
	b.Image = &domain.Image{
		HTML:      "<img>",
		AltText:   "logo",
		Thumbnail: &domain.SingleImage{URL: "https://cms.example.com/thumb.jpg"},
	}
	ix.seedBusinesses(t, b)

	resp, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.Equal(t, "Short", item.Description)
	assert.Equal(t, "Centrum", item.Area)
	assert.Equal(t, "Göteborg", item.City)
	assert.True(t, item.HasImage)
	assert.Equal(t, "https://cms.example.com/thumb.jpg", item.ImageURL)
	assert.Equal(t, "logo", item.ImageAlt)
	assert.Equal(t, []string{"Mat"}, item.Tags)
}

func TestBusinessUseCase_GetBusinesses_TagGroupsError(t *testing.T) {
	content := new(MockContentRepository)
	content.On("GetTagGroups", mock.Anything).Return(nil, errors.New("cms down"))
	ix := newIndexes(t)

	uc := usecase.NewBusinessUseCase(ix.businesses, ix.regions, ix.tags, content, 12, zap.NewNop())

	_, err := uc.GetBusinesses(context.Background(), dto.BusinessListRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get tag groups")
}

func TestBusinessUseCase_GetCoordinates(t *testing.T) {
	uc, _, ix := newBusinessUseCase(t, 1)
	noAddress := catalogBusiness(3, 7)
	noAddress.AddressAndCoordinates = nil
	ix.seedBusinesses(t, catalogBusiness(1, 7), catalogBusiness(2, 7), noAddress)

	items, err := uc.GetCoordinates(context.Background(), dto.BusinessListRequest{})
	require.NoError(t, err)

	// not paged; businesses without coordinates are left out
	require.Len(t, items, 2)
	assert.Equal(t, "Short", items[0].Description)
	assert.NotEmpty(t, items[0].AddressAndCoordinates)
}

func TestBusinessUseCase_GetTranslations(t *testing.T) {
	uc, content, _ := newBusinessUseCase(t, 12)
	content.On("GetTranslations", mock.Anything).Return([]domain.Translation{
		{Title: domain.Rendered{Rendered: "Search_Button"}, TranslationText: "Sök", LanguageCode: "sv"},
		{Title: domain.Rendered{Rendered: "Search_Button"}, TranslationText: "Search", LanguageCode: "en"},
	}, nil)

	sv, err := uc.GetTranslations(context.Background(), "")
	require.NoError(t, err)
	en, err := uc.GetTranslations(context.Background(), "en")
	require.NoError(t, err)
	none, err := uc.GetTranslations(context.Background(), "de")
	require.NoError(t, err)

	assert.Equal(t, []dto.TranslationItem{{Key: "search_button", Value: "Sök"}}, sv)
	assert.Equal(t, []dto.TranslationItem{{Key: "search_button", Value: "Search"}}, en)
	assert.Empty(t, none)
}

func TestBusinessUseCase_GetTransactionTags(t *testing.T) {
	uc, _, _ := newBusinessUseCase(t, 12)

	items, found, err := uc.GetTransactionTags(context.Background(), "sv")
	require.NoError(t, err)

	assert.True(t, found)
	assert.ElementsMatch(t, []dto.TagItem{{ID: 5, Name: "Byta"}, {ID: 6, Name: "Låna"}}, items)
}

func TestBusinessUseCase_GetTransactionTags_MissingGroup(t *testing.T) {
	content := new(MockContentRepository)
	content.On("GetTagGroups", mock.Anything).Return([]domain.TagGroup{{ID: 1, Slug: domain.MainTagGroupSlug}}, nil)
	ix := newIndexes(t)

	uc := usecase.NewBusinessUseCase(ix.businesses, ix.regions, ix.tags, content, 12, zap.NewNop())

	items, found, err := uc.GetTransactionTags(context.Background(), "sv")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, items)
}
