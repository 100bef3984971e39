package elasticsearch

import (
	"fmt"
	"strconv"

	"github.com/smartmap-web/internal/domain/query"
)

// buildSearchBody renders a request as a search DSL body.
func buildSearchBody(req query.Request) (map[string]any, error) {
	clause := req.Query
	if clause == nil {
		clause = query.MatchAll{}
	}

	q, err := translate(clause)
	if err != nil {
		return nil, err
	}

	if req.Random != nil {
		random := map[string]any{"seed": req.Random.Seed}
		if req.Random.Field != "" {
			random["field"] = req.Random.Field
		}
		q = map[string]any{
			"function_score": map[string]any{
				"query": q,
				"functions": []map[string]any{
					{"random_score": random},
				},
			},
		}
	}

	body := map[string]any{
		"from":  req.From,
		"size":  req.Size,
		"query": q,
	}
	if req.TrackTotalHits {
		body["track_total_hits"] = true
	}

	if len(req.Sort) > 0 {
		sorts := make([]map[string]any, 0, len(req.Sort))
		for _, s := range req.Sort {
			order := "asc"
			if s.Desc {
				order = "desc"
			}
			sorts = append(sorts, map[string]any{s.Field: map[string]any{"order": order}})
		}
		body["sort"] = sorts
	}

	if len(req.Aggregations) > 0 {
		aggs := make(map[string]any, len(req.Aggregations))
		for _, a := range req.Aggregations {
			terms := map[string]any{"field": a.Field}
			if a.Size > 0 {
				terms["size"] = a.Size
			}
			aggs[a.Name] = map[string]any{"terms": terms}
		}
		body["aggs"] = aggs
	}

	return body, nil
}

func translate(clause query.Clause) (map[string]any, error) {
	switch c := clause.(type) {
	case query.MatchAll:
		return map[string]any{"match_all": map[string]any{}}, nil

	case query.MultiMatch:
		fields := make([]string, 0, len(c.Fields))
		for _, f := range c.Fields {
			if f.Boost == 0 {
				fields = append(fields, f.Name)
				continue
			}
			fields = append(fields, f.Name+"^"+strconv.FormatFloat(f.Boost, 'f', -1, 64))
		}
		mm := map[string]any{
			"query":  c.Query,
			"fields": fields,
		}
		if c.Operator != "" {
			mm["operator"] = string(c.Operator)
		}
		return map[string]any{"multi_match": mm}, nil

	case query.Match:
		m := map[string]any{"query": c.Query}
		if c.Operator != "" {
			m["operator"] = string(c.Operator)
		}
		return map[string]any{"match": map[string]any{c.Field: m}}, nil

	case query.Term:
		return map[string]any{"term": map[string]any{c.Field: c.Value}}, nil

	case query.Terms:
		return map[string]any{"terms": map[string]any{c.Field: c.Values}}, nil

	case query.Range:
		r := map[string]any{}
		if c.GTE != nil {
			r["gte"] = *c.GTE
		}
		if c.LTE != nil {
			r["lte"] = *c.LTE
		}
		return map[string]any{"range": map[string]any{c.Field: r}}, nil

	case query.Exists:
		return map[string]any{"exists": map[string]any{"field": c.Field}}, nil

	case query.Bool:
		b := map[string]any{}
		for name, clauses := range map[string][]query.Clause{
			"must":     c.Must,
			"should":   c.Should,
			"filter":   c.Filter,
			"must_not": c.MustNot,
		} {
			if len(clauses) == 0 {
				continue
			}
			rendered := make([]map[string]any, 0, len(clauses))
			for _, sub := range clauses {
				r, err := translate(sub)
				if err != nil {
					return nil, err
				}
				rendered = append(rendered, r)
			}
			b[name] = rendered
		}
		return map[string]any{"bool": b}, nil

	default:
		return nil, fmt.Errorf("unsupported clause %T", clause)
	}
}
