package elasticsearch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmap-web/internal/domain/query"
)

func toJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestTranslate_Clauses(t *testing.T) {
	tests := []struct {
		name     string
		clause   query.Clause
		expected string
	}{
		{
			name:     "match all",
			clause:   query.MatchAll{},
			expected: `{"match_all":{}}`,
		},
		{
			name: "multi match with boosts",
			clause: query.MultiMatch{
				Query:    "second hand",
				Fields:   []query.Field{{Name: "header", Boost: 1}, {Name: "description", Boost: 3}, {Name: "area"}},
				Operator: query.OperatorOr,
			},
			expected: `{"multi_match":{"fields":["header^1","description^3","area"],"operator":"or","query":"second hand"}}`,
		},
		{
			name:     "match with operator",
			clause:   query.Match{Field: "tags", Query: "rental clothing", Operator: query.OperatorAnd},
			expected: `{"match":{"tags":{"operator":"and","query":"rental clothing"}}}`,
		},
		{
			name:     "terms",
			clause:   query.Terms{Field: "city.id", Values: []any{7, 9}},
			expected: `{"terms":{"city.id":[7,9]}}`,
		},
		{
			name:     "term",
			clause:   query.Term{Field: "openingHours.alwaysOpen", Value: true},
			expected: `{"term":{"openingHours.alwaysOpen":true}}`,
		},
		{
			name:     "range",
			clause:   query.Range{Field: "openingHours.openingHourMonday", LTE: query.Int64(36000000000)},
			expected: `{"range":{"openingHours.openingHourMonday":{"lte":36000000000}}}`,
		},
		{
			name:     "exists",
			clause:   query.Exists{Field: "addressAndCoordinates"},
			expected: `{"exists":{"field":"addressAndCoordinates"}}`,
		},
		{
			name: "bool omits empty sections",
			clause: query.Bool{
				Must:   []query.Clause{query.MatchAll{}},
				Filter: []query.Clause{query.Exists{Field: "id"}},
			},
			expected: `{"bool":{"filter":[{"exists":{"field":"id"}}],"must":[{"match_all":{}}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translate(tt.clause)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, toJSON(t, got))
		})
	}
}

func TestBuildSearchBody_RandomScoreAndAggregations(t *testing.T) {
	body, err := buildSearchBody(query.Request{
		Query:          query.MatchAll{},
		From:           12,
		Size:           12,
		Random:         &query.RandomScore{Seed: 42, Field: "_seq_no"},
		Aggregations:   []query.TermsAggregation{{Name: "by_tags", Field: "tags.keyword", Size: 1000}},
		TrackTotalHits: true,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"from": 12,
		"size": 12,
		"track_total_hits": true,
		"query": {"function_score": {
			"query": {"match_all": {}},
			"functions": [{"random_score": {"seed": 42, "field": "_seq_no"}}]
		}},
		"aggs": {"by_tags": {"terms": {"field": "tags.keyword", "size": 1000}}}
	}`, toJSON(t, body))
}

func TestBuildSearchBody_Sort(t *testing.T) {
	body, err := buildSearchBody(query.Request{
		Size: 5,
		Sort: []query.SortField{{Field: "header.keyword"}, {Field: "created", Desc: true}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"from": 0,
		"size": 5,
		"query": {"match_all": {}},
		"sort": [{"header.keyword": {"order": "asc"}}, {"created": {"order": "desc"}}]
	}`, toJSON(t, body))
}
