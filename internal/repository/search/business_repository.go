package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain"
	"github.com/smartmap-web/internal/domain/query"
	"github.com/smartmap-web/internal/domain/repository"
)

// Index fields used by the business queries.
const (
	fieldHeader           = "header"
	fieldHeaderKeyword    = "header.keyword"
	fieldTags             = "tags"
	fieldTagsKeyword      = "tags.keyword"
	fieldArea             = "area"
	fieldShortDescription = "shortDescription"
	fieldDescription      = "description"
	fieldAddress          = "addressAndCoordinates.address"
	fieldAddresses        = "addressAndCoordinates"
	fieldLanguageCode     = "languageCode"
	fieldCityID           = "city.id"
	fieldOnlineOnly       = "onlineOnly"
	fieldCreated          = "created"
	fieldLastUpdated      = "lastUpdated"
	fieldSeqNo            = "_seq_no"

	// TagsAggregation - name of the tag count aggregation
	TagsAggregation = "by_tags"
)

var textFields = []query.Field{
	{Name: fieldHeader, Boost: 1},
	{Name: fieldTags, Boost: 2},
	{Name: fieldArea, Boost: 2},
	{Name: fieldShortDescription, Boost: 2},
	{Name: fieldDescription, Boost: 3},
	{Name: fieldAddress, Boost: 3},
}

// BusinessRepository - faceted search over the business index
type BusinessRepository struct {
	*Repository[domain.Business]
	location *time.Location
	now      func() time.Time
}

var _ repository.BusinessRepository = (*BusinessRepository)(nil)

// NewBusinessRepository создает репозиторий бизнесов. Opening hours are
// evaluated in location.
func NewBusinessRepository(store repository.DocumentStore, index string, maxSize int, location *time.Location, logger *zap.Logger) *BusinessRepository {
	if location == nil {
		location = time.Local
	}
	return &BusinessRepository{
		Repository: NewRepository[domain.Business](store, index, maxSize, logger),
		location:   location,
		now:        time.Now,
	}
}

// WithClock replaces the clock used by the open-now filter.
func (r *BusinessRepository) WithClock(now func() time.Time) *BusinessRepository {
	r.now = now
	return r
}

func (r *BusinessRepository) localNow() time.Time {
	return r.now().In(r.location)
}

func (r *BusinessRepository) GetBusinesses(ctx context.Context, filter domain.BusinessFilter) (*domain.BusinessSearchResult, error) {
	start := time.Now()

	req := query.Request{
		Query: MainQuery(filter, r.localNow()),
		From:  filter.From,
		Size:  filter.Size,
		Aggregations: []query.TermsAggregation{
			{Name: TagsAggregation, Field: fieldTagsKeyword, Size: domain.TagAggregationSize},
		},
		TrackTotalHits: true,
	}
	if filter.Sorting == domain.SortRandom {
		req.Random = &query.RandomScore{Seed: filter.RandomSeed, Field: fieldSeqNo}
	} else {
		req.Sort = SortFields(filter.Sorting)
	}

	resp, err := r.Search(ctx, req)
	if err != nil {
		r.logger.Error("Failed to search businesses", append(filterFields(filter), zap.Error(err))...)
		return nil, fmt.Errorf("search businesses: %w", err)
	}

	result := &domain.BusinessSearchResult{
		Items: make([]domain.BusinessHit, 0, len(resp.Hits)),
		Total: resp.Total,
	}
	businesses, err := DecodeHits[domain.Business](resp.Hits)
	if err != nil {
		return nil, err
	}
	for i, b := range businesses {
		result.Items = append(result.Items, domain.BusinessHit{Business: b, Score: resp.Hits[i].Score})
	}
	for _, b := range resp.Aggregations[TagsAggregation] {
		result.TagCounts = append(result.TagCounts, domain.TagBucket{Key: b.Key, DocCount: b.DocCount})
	}

	r.logger.Info("Search businesses",
		append(filterFields(filter),
			zap.Int("count", len(result.Items)),
			zap.Int64("total", result.Total),
			zap.Duration("took", time.Since(start)))...)

	return result, nil
}

func (r *BusinessRepository) GetAllBusinessCoordinates(ctx context.Context, filter domain.BusinessFilter) ([]domain.BusinessCoordinate, error) {
	clause := MainQuery(filter, r.localNow())
	clause.Must = append(clause.Must, query.Exists{Field: fieldAddresses})

	size := filter.Size
	if size <= 0 {
		size = r.maxSize
	}

	resp, err := r.Search(ctx, query.Request{
		Query: clause,
		From:  filter.From,
		Size:  size,
	})
	if err != nil {
		r.logger.Error("Failed to search business coordinates", append(filterFields(filter), zap.Error(err))...)
		return nil, fmt.Errorf("search business coordinates: %w", err)
	}

	coordinates, err := DecodeHits[domain.BusinessCoordinate](resp.Hits)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Search business coordinates", append(filterFields(filter), zap.Int("count", len(coordinates)))...)
	return coordinates, nil
}

// MainQuery builds the filtered business query. Empty optional inputs add no
// clause; the language clause is always present.
func MainQuery(f domain.BusinessFilter, now time.Time) query.Bool {
	languageCode := strings.ToLower(f.LanguageCode)
	if languageCode == "" {
		languageCode = domain.DefaultLanguageCode
	}

	must := query.Compact(
		textQuery(f.Query),
		tagsQuery(f.Tags, query.OperatorAnd),
		tagsQuery(f.TransactionTags, query.OperatorOr),
		query.Match{Field: fieldLanguageCode, Query: languageCode},
		regionQuery(f.RegionIDs),
		digitalQuery(f.Digital),
	)

	var filter []query.Clause
	if f.OpenNow {
		filter = append(filter, TimeRange(now))
	}

	return query.Bool{Must: must, Filter: filter}
}

// TimeRange matches businesses open at now's time of day on now's weekday,
// and every business flagged always open or hiding its hours. Only the time of
// day is compared, never the date.
func TimeRange(now time.Time) query.Clause {
	ticks := domain.TimeOfDayOf(now).Ticks()
	opening, closing := domain.OpeningHourFields(now.Weekday())

	return query.Bool{
		Should: []query.Clause{
			query.Bool{
				Filter: []query.Clause{
					query.Range{Field: opening, LTE: query.Int64(ticks)},
					query.Range{Field: closing, GTE: query.Int64(ticks)},
				},
				MustNot: []query.Clause{
					query.Term{Field: domain.ClosedOnField(now.Weekday()), Value: true},
				},
			},
			query.Terms{Field: domain.FieldAlwaysOpen, Values: []any{true}},
			query.Terms{Field: domain.FieldHideOpeningHours, Values: []any{true}},
		},
	}
}

// SortFields maps a deterministic sorting to index sort fields; unknown values
// sort by descending relevance.
func SortFields(s domain.BusinessSorting) []query.SortField {
	switch s {
	case domain.SortHeaderDesc:
		return []query.SortField{{Field: fieldHeaderKeyword, Desc: true}}
	case domain.SortHeaderAsc:
		return []query.SortField{{Field: fieldHeaderKeyword}}
	case domain.SortLatestAdded:
		return []query.SortField{{Field: fieldCreated, Desc: true}}
	case domain.SortLatestUpdated:
		return []query.SortField{{Field: fieldLastUpdated, Desc: true}}
	default:
		return []query.SortField{{Field: query.ScoreField, Desc: true}}
	}
}

func textQuery(text string) query.Clause {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return query.MultiMatch{Query: text, Fields: textFields, Operator: query.OperatorOr}
}

func tagsQuery(tags []string, op query.Operator) query.Clause {
	joined := strings.TrimSpace(strings.Join(tags, " "))
	if joined == "" {
		return nil
	}
	return query.Match{Field: fieldTags, Query: joined, Operator: op}
}

func regionQuery(ids []int) query.Clause {
	if len(ids) == 0 {
		return nil
	}
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return query.Terms{Field: fieldCityID, Values: values}
}

func digitalQuery(digital *bool) query.Clause {
	if digital == nil {
		return nil
	}
	return query.Match{Field: fieldOnlineOnly, Query: fmt.Sprint(*digital)}
}

func filterFields(f domain.BusinessFilter) []zap.Field {
	fields := []zap.Field{
		zap.String("query", f.Query),
		zap.Strings("tags", f.Tags),
		zap.Strings("transaction_tags", f.TransactionTags),
		zap.Ints("region_ids", f.RegionIDs),
		zap.String("language", f.LanguageCode),
		zap.Bool("open_now", f.OpenNow),
		zap.Stringer("sorting", f.Sorting),
	}
	if f.Digital != nil {
		fields = append(fields, zap.Bool("digital", *f.Digital))
	}
	return fields
}
