// Package query describes document store searches independently of any store.
// Adapters translate a Request into their native query language.
package query

import "encoding/json"

// Operator combines the terms of an analyzed query.
type Operator string

const (
	OperatorOr  Operator = "or"
	OperatorAnd Operator = "and"
)

// Clause is one node of a query tree.
type Clause interface {
	clause()
}

// MatchAll matches every document.
type MatchAll struct{}

// MultiMatch runs an analyzed text query over several weighted fields.
type MultiMatch struct {
	Query    string
	Fields   []Field
	Operator Operator
}

// Field - field name with a relevance weight
type Field struct {
	Name  string
	Boost float64
}

// Match runs an analyzed text query against one field.
type Match struct {
	Field    string
	Query    string
	Operator Operator
}

// Term matches an exact value.
type Term struct {
	Field string
	Value any
}

// Terms matches when the field holds any of the values.
type Terms struct {
	Field  string
	Values []any
}

// Range bounds an integer field; nil bounds are open.
type Range struct {
	Field string
	GTE   *int64
	LTE   *int64
}

// Exists matches documents with a non-null, non-empty value at Field.
type Exists struct {
	Field string
}

// Bool combines clauses. Must and Should contribute to the score, Filter and
// MustNot do not. A bool with only Should clauses needs at least one of them.
type Bool struct {
	Must    []Clause
	Should  []Clause
	Filter  []Clause
	MustNot []Clause
}

func (MatchAll) clause()   {}
func (MultiMatch) clause() {}
func (Match) clause()      {}
func (Term) clause()       {}
func (Terms) clause()      {}
func (Range) clause()      {}
func (Exists) clause()     {}
func (Bool) clause()       {}

// SortField orders hits by a field; ScoreField sorts by relevance.
type SortField struct {
	Field string
	Desc  bool
}

// ScoreField - pseudo field holding the relevance score
const ScoreField = "_score"

// RandomScore replaces relevance by a seeded pseudo-random score. The same seed
// yields the same order over the same index state.
type RandomScore struct {
	Seed  int64
	Field string
}

// TermsAggregation counts documents per distinct value of Field.
type TermsAggregation struct {
	Name  string
	Field string
	Size  int
}

// Request - one search round trip
type Request struct {
	Query          Clause
	From           int
	Size           int
	Sort           []SortField
	Random         *RandomScore
	Aggregations   []TermsAggregation
	TrackTotalHits bool
}

// Hit - matched document with its raw source
type Hit struct {
	ID     string
	Score  *float64
	Source json.RawMessage
}

// Bucket - aggregation bucket
type Bucket struct {
	Key      string
	DocCount int64
}

// Response - page of hits, the total match count and the requested aggregations
type Response struct {
	Total        int64
	Hits         []Hit
	Aggregations map[string][]Bucket
}

// Int64 returns a pointer to v, for Range bounds.
func Int64(v int64) *int64 {
	return &v
}

// Compact drops nil clauses so optional parts of a query can be built inline.
func Compact(clauses ...Clause) []Clause {
	out := make([]Clause, 0, len(clauses))
	for _, c := range clauses {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
