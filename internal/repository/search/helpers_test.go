package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/query"
	"github.com/smartmap-web/internal/domain/repository"
	"github.com/smartmap-web/internal/repository/memory"
)

const testBusinessIndex = "sk-businesses-api"

// monday10 - Monday 2024-01-01 10:00 UTC
var monday10 = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

func newBusinessRepo(t *testing.T, businesses ...domain.Business) *BusinessRepository {
	t.Helper()

	store := memory.NewStore(zap.NewNop())
	repo := NewBusinessRepository(store, testBusinessIndex, domain.MaxResultSize, time.UTC, zap.NewNop()).
		WithClock(func() time.Time { return monday10 })
	require.NoError(t, repo.Insert(context.Background(), businesses))
	return repo
}

type businessOption func(*domain.Business)

func newBusiness(id int, opts ...businessOption) domain.Business {
	b := domain.Business{
		ID:             id,
		Header:         "Business",
		LanguageCode:   "sv",
		DetailPageLink: "/goteborg/business",
		City:           &domain.IDAndName{ID: 7, Name: "Göteborg"},
		AddressAndCoordinates: []domain.AddressAndCoordinate{
			{Latitude: 57.7, Longitude: 11.97, Address: "Kungsgatan 1"},
		},
		Created:     time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
		LastUpdated: time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func withHeader(h string) businessOption {
	return func(b *domain.Business) { b.Header = h }
}

func withTags(tags ...string) businessOption {
	return func(b *domain.Business) { b.Tags = tags }
}

func withLanguage(lang string) businessOption {
	return func(b *domain.Business) { b.LanguageCode = lang }
}

func withCity(id int) businessOption {
	return func(b *domain.Business) { b.City = &domain.IDAndName{ID: id} }
}

func withOnlineOnly(v bool) businessOption {
	return func(b *domain.Business) { b.OnlineOnly = &v }
}

func withoutAddresses() businessOption {
	return func(b *domain.Business) { b.AddressAndCoordinates = nil }
}

func withHours(h domain.OpeningHours) businessOption {
	return func(b *domain.Business) { b.OpeningHours = &h }
}

func withDetailLink(link string) businessOption {
	return func(b *domain.Business) { b.DetailPageLink = link }
}

func clock(hour int) *domain.TimeOfDay {
	t := domain.NewTimeOfDay(hour, 0, 0)
	return &t
}

func boolPtr(v bool) *bool {
	return &v
}

func hitIDs(result *domain.BusinessSearchResult) []int {
	ids := make([]int, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, item.Business.ID)
	}
	return ids
}

func clauseJSON(t *testing.T, c query.Clause) string {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	return string(data)
}

var errStoreDown = errors.New("connection refused")

// failingStore fails every call.
type failingStore struct{}

var _ repository.DocumentStore = failingStore{}

func (failingStore) Search(context.Context, string, query.Request) (*query.Response, error) {
	return nil, errStoreDown
}

func (failingStore) BulkIndex(context.Context, string, []repository.IndexedDocument) error {
	return errStoreDown
}

func (failingStore) Replace(context.Context, string, string, json.RawMessage) error {
	return errStoreDown
}

func (failingStore) DeleteByQuery(context.Context, string, query.Clause) error {
	return errStoreDown
}

func (failingStore) Ping(context.Context) error {
	return errStoreDown
}
