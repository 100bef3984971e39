// Package memory evaluates search requests against documents held in process.
// It mirrors the subset of search engine semantics the application relies on:
// analyzed text matching, exact ".keyword" sub-fields, ranges, seeded random
// scoring and terms aggregations.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain/query"
	"github.com/smartmap-web/internal/domain/repository"
)

const keywordSuffix = ".keyword"

type document struct {
	id     string
	source json.RawMessage
	fields map[string]any
	seq    int64
}

// Store - in-process document store, safe for concurrent use
type Store struct {
	mu      sync.RWMutex
	indices map[string]map[string]*document
	seq     int64
	logger  *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		indices: make(map[string]map[string]*document),
		logger:  logger,
	}
}

var _ repository.DocumentStore = (*Store)(nil)

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) BulkIndex(ctx context.Context, index string, docs []repository.IndexedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	parsed := make([]*document, 0, len(docs))
	for _, d := range docs {
		doc, err := newDocument(d.ID, d.Source)
		if err != nil {
			return err
		}
		parsed = append(parsed, doc)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(index)
	for _, doc := range parsed {
		s.seq++
		doc.seq = s.seq
		idx[doc.id] = doc
	}
	return nil
}

// Replace overwrites the whole source of id. The insertion order of an
// existing document is kept.
func (s *Store) Replace(ctx context.Context, index, id string, source json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := newDocument(id, source)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(index)
	if existing, ok := idx[id]; ok {
		doc.seq = existing.seq
	} else {
		s.seq++
		doc.seq = s.seq
	}
	idx[id] = doc
	return nil
}

func (s *Store) DeleteByQuery(ctx context.Context, index string, clause query.Clause) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(index)
	for id, doc := range idx {
		if ok, _ := matches(clause, doc); ok {
			delete(idx, id)
		}
	}
	return nil
}

func (s *Store) Search(ctx context.Context, index string, req query.Request) (*query.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	docs := make([]*document, 0, len(s.indices[index]))
	for _, doc := range s.indices[index] {
		docs = append(docs, doc)
	}
	s.mu.RUnlock()

	clause := req.Query
	if clause == nil {
		clause = query.MatchAll{}
	}

	type scored struct {
		doc   *document
		score float64
	}
	hits := make([]scored, 0, len(docs))
	for _, doc := range docs {
		ok, score := matches(clause, doc)
		if !ok {
			continue
		}
		if req.Random != nil {
			score *= randomScore(req.Random.Seed, doc)
		}
		hits = append(hits, scored{doc: doc, score: score})
	}

	sortSpec := req.Sort
	if len(sortSpec) == 0 {
		sortSpec = []query.SortField{{Field: query.ScoreField, Desc: true}}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		for _, sf := range sortSpec {
			var c int
			if sf.Field == query.ScoreField {
				c = compareFloat(hits[i].score, hits[j].score)
			} else {
				c = compareValues(firstValue(hits[i].doc, sf.Field), firstValue(hits[j].doc, sf.Field))
			}
			if c == 0 {
				continue
			}
			if sf.Desc {
				return c > 0
			}
			return c < 0
		}
		return hits[i].doc.seq < hits[j].doc.seq
	})

	resp := &query.Response{
		Total:        int64(len(hits)),
		Aggregations: make(map[string][]query.Bucket, len(req.Aggregations)),
	}

	for _, agg := range req.Aggregations {
		matched := make([]*document, 0, len(hits))
		for _, h := range hits {
			matched = append(matched, h.doc)
		}
		resp.Aggregations[agg.Name] = termsBuckets(agg, matched)
	}

	from := max(req.From, 0)
	end := len(hits)
	if req.Size >= 0 && from+req.Size < end {
		end = from + req.Size
	}
	for i := from; i < end; i++ {
		score := hits[i].score
		resp.Hits = append(resp.Hits, query.Hit{
			ID:     hits[i].doc.id,
			Score:  &score,
			Source: hits[i].doc.source,
		})
	}

	s.logger.Debug("Memory search",
		zap.String("index", index),
		zap.Int64("total", resp.Total),
		zap.Int("returned", len(resp.Hits)))

	return resp, nil
}

// Count returns the number of documents in an index.
func (s *Store) Count(index string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.indices[index])
}

func (s *Store) index(name string) map[string]*document {
	idx, ok := s.indices[name]
	if !ok {
		idx = make(map[string]*document)
		s.indices[name] = idx
	}
	return idx
}

func newDocument(id string, source json.RawMessage) (*document, error) {
	var fields map[string]any
	if err := json.Unmarshal(source, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return &document{id: id, source: source, fields: fields}, nil
}

// matches reports whether the clause matches the document and its score.
func matches(clause query.Clause, doc *document) (bool, float64) {
	switch c := clause.(type) {
	case query.MatchAll:
		return true, 1
	case query.MultiMatch:
		terms := tokenize(c.Query)
		if len(terms) == 0 {
			return false, 0
		}
		var score float64
		matchedAny := false
		for _, f := range c.Fields {
			hit, n := matchTokens(fieldTokens(doc, f.Name), terms, c.Operator)
			if hit {
				matchedAny = true
				boost := f.Boost
				if boost == 0 {
					boost = 1
				}
				score += boost * float64(n)
			}
		}
		return matchedAny, score
	case query.Match:
		terms := tokenize(c.Query)
		if len(terms) == 0 {
			return false, 0
		}
		hit, n := matchTokens(fieldTokens(doc, c.Field), terms, c.Operator)
		return hit, float64(n)
	case query.Term:
		for _, v := range values(doc, c.Field) {
			if equalValues(v, c.Value) {
				return true, 1
			}
		}
		return false, 0
	case query.Terms:
		for _, v := range values(doc, c.Field) {
			for _, want := range c.Values {
				if equalValues(v, want) {
					return true, 1
				}
			}
		}
		return false, 0
	case query.Range:
		for _, v := range values(doc, c.Field) {
			n, ok := toFloat(v)
			if !ok {
				continue
			}
			if c.GTE != nil && n < float64(*c.GTE) {
				continue
			}
			if c.LTE != nil && n > float64(*c.LTE) {
				continue
			}
			return true, 1
		}
		return false, 0
	case query.Exists:
		return len(values(doc, c.Field)) > 0, 1
	case query.Bool:
		return matchBool(c, doc)
	default:
		return false, 0
	}
}

func matchBool(c query.Bool, doc *document) (bool, float64) {
	var score float64
	for _, m := range c.Must {
		ok, s := matches(m, doc)
		if !ok {
			return false, 0
		}
		score += s
	}
	for _, f := range c.Filter {
		if ok, _ := matches(f, doc); !ok {
			return false, 0
		}
	}
	for _, n := range c.MustNot {
		if ok, _ := matches(n, doc); ok {
			return false, 0
		}
	}
	if len(c.Should) > 0 {
		matchedShould := false
		for _, sh := range c.Should {
			if ok, s := matches(sh, doc); ok {
				matchedShould = true
				score += s
			}
		}
		if !matchedShould && len(c.Must) == 0 && len(c.Filter) == 0 {
			return false, 0
		}
	}
	if len(c.Must) == 0 && len(c.Should) == 0 {
		score = 1
	}
	return true, score
}

func matchTokens(fieldTokens map[string]struct{}, terms []string, op query.Operator) (bool, int) {
	n := 0
	for _, t := range terms {
		if _, ok := fieldTokens[t]; ok {
			n++
		}
	}
	if op == query.OperatorAnd {
		return n == len(terms), n
	}
	return n > 0, n
}

// values resolves a dotted path, flattening arrays on the way. A ".keyword"
// suffix addresses the raw value of the text field.
func values(doc *document, path string) []any {
	path = strings.TrimSuffix(path, keywordSuffix)
	var current []any = []any{map[string]any(doc.fields)}
	for _, part := range strings.Split(path, ".") {
		var next []any
		for _, v := range current {
			obj, ok := v.(map[string]any)
			if !ok {
				continue
			}
			next = appendFlat(next, obj[part])
		}
		current = next
	}
	return current
}

func appendFlat(dst []any, v any) []any {
	switch t := v.(type) {
	case nil:
		return dst
	case []any:
		for _, item := range t {
			dst = appendFlat(dst, item)
		}
		return dst
	default:
		return append(dst, t)
	}
}

func firstValue(doc *document, path string) any {
	vals := values(doc, path)
	if len(vals) == 0 {
		return nil
	}
	return vals[0]
}

func fieldTokens(doc *document, path string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, v := range values(doc, path) {
		for _, t := range tokenize(stringify(v)) {
			tokens[t] = struct{}{}
		}
	}
	return tokens
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func equalValues(stored, want any) bool {
	if a, ok := toFloat(stored); ok {
		b, ok := toFloat(want)
		return ok && a == b
	}
	switch s := stored.(type) {
	case string:
		w, ok := want.(string)
		return ok && s == w
	case bool:
		w, ok := want.(bool)
		return ok && s == w
	}
	return false
}

func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return compareFloat(fa, fb)
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			ta, errA := time.Parse(time.RFC3339Nano, sa)
			tb, errB := time.Parse(time.RFC3339Nano, sb)
			if errA == nil && errB == nil {
				return ta.Compare(tb)
			}
		}
	}
	return strings.Compare(stringify(a), stringify(b))
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// randomScore derives a stable value in (0, 1] from the seed and the document.
func randomScore(seed int64, doc *document) float64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%s", seed, doc.id)
	return float64(h.Sum64()%1_000_000+1) / 1_000_000
}

func termsBuckets(agg query.TermsAggregation, docs []*document) []query.Bucket {
	counts := make(map[string]int64)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, v := range values(doc, agg.Field) {
			key := stringify(v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			counts[key]++
		}
	}

	buckets := make([]query.Bucket, 0, len(counts))
	for k, n := range counts {
		buckets = append(buckets, query.Bucket{Key: k, DocCount: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].DocCount != buckets[j].DocCount {
			return buckets[i].DocCount > buckets[j].DocCount
		}
		return buckets[i].Key < buckets[j].Key
	})
	if agg.Size > 0 && len(buckets) > agg.Size {
		buckets = buckets[:agg.Size]
	}
	return buckets
}
