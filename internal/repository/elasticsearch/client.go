package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/smartmap-web/internal/domain/query"
	"github.com/smartmap-web/internal/domain/repository"
)

// Config - connection settings
type Config struct {
	URL      string
	Username string
	Password string
}

// Store - document store backed by Elasticsearch
type Store struct {
	es     *elasticsearch.Client
	logger *zap.Logger
}

var _ repository.DocumentStore = (*Store)(nil)

// NewStore создает клиент Elasticsearch
func NewStore(cfg Config, logger *zap.Logger) (*Store, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	return &Store{es: es, logger: logger}, nil
}

// Ping checks if Elasticsearch is available.
func (s *Store) Ping(ctx context.Context) error {
	res, err := s.es.Ping(s.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping failed: %s", res.Status())
	}
	return nil
}

func (s *Store) Search(ctx context.Context, index string, req query.Request) (*query.Response, error) {
	body, err := buildSearchBody(req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(index),
		s.es.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		data, _ := io.ReadAll(res.Body)
		s.logger.Error("Search request failed",
			zap.String("index", index),
			zap.Int("status", res.StatusCode),
			zap.ByteString("request", payload),
			zap.String("response", strings.TrimSpace(string(data))))
		return nil, fmt.Errorf("search %s failed: %s", index, res.Status())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID     string          `json:"_id"`
				Score  *float64        `json:"_score"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
		Aggregations map[string]struct {
			Buckets []struct {
				Key      json.RawMessage `json:"key"`
				DocCount int64           `json:"doc_count"`
			} `json:"buckets"`
		} `json:"aggregations"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	resp := &query.Response{
		Total:        parsed.Hits.Total.Value,
		Hits:         make([]query.Hit, 0, len(parsed.Hits.Hits)),
		Aggregations: make(map[string][]query.Bucket, len(parsed.Aggregations)),
	}
	for _, h := range parsed.Hits.Hits {
		resp.Hits = append(resp.Hits, query.Hit{ID: h.ID, Score: h.Score, Source: h.Source})
	}
	for name, agg := range parsed.Aggregations {
		buckets := make([]query.Bucket, 0, len(agg.Buckets))
		for _, b := range agg.Buckets {
			buckets = append(buckets, query.Bucket{Key: bucketKey(b.Key), DocCount: b.DocCount})
		}
		resp.Aggregations[name] = buckets
	}

	return resp, nil
}

func (s *Store) BulkIndex(ctx context.Context, index string, docs []repository.IndexedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, d := range docs {
		meta, err := json.Marshal(map[string]any{"index": map[string]any{"_index": index, "_id": d.ID}})
		if err != nil {
			return fmt.Errorf("marshal bulk meta: %w", err)
		}
		buf.Write(meta)
		buf.WriteByte('\n')
		buf.Write(d.Source)
		buf.WriteByte('\n')
	}

	req := esapi.BulkRequest{
		Index: index,
		Body:  &buf,
	}
	res, err := req.Do(ctx, s.es)
	if err != nil {
		return fmt.Errorf("bulk index %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		data, _ := io.ReadAll(res.Body)
		s.logger.Error("Bulk request failed",
			zap.String("index", index),
			zap.Int("status", res.StatusCode),
			zap.String("response", strings.TrimSpace(string(data))))
		return fmt.Errorf("bulk index %s failed: %s", index, res.Status())
	}

	var parsed struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID     string          `json:"_id"`
			Status int             `json:"status"`
			Error  json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}
	if !parsed.Errors {
		return nil
	}

	failed := 0
	for _, item := range parsed.Items {
		for _, result := range item {
			if len(result.Error) == 0 {
				continue
			}
			failed++
			s.logger.Error("Bulk item failed",
				zap.String("index", index),
				zap.String("id", result.ID),
				zap.Int("status", result.Status),
				zap.ByteString("error", result.Error))
		}
	}
	return fmt.Errorf("bulk index %s: %d of %d documents failed", index, failed, len(docs))
}

func (s *Store) Replace(ctx context.Context, index, id string, doc json.RawMessage) error {
	req := esapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(doc),
	}
	res, err := req.Do(ctx, s.es)
	if err != nil {
		return fmt.Errorf("replace %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		data, _ := io.ReadAll(res.Body)
		s.logger.Error("Index request failed",
			zap.String("index", index),
			zap.String("id", id),
			zap.Int("status", res.StatusCode),
			zap.String("response", strings.TrimSpace(string(data))))
		return fmt.Errorf("replace %s/%s failed: %s", index, id, res.Status())
	}
	return nil
}

func (s *Store) DeleteByQuery(ctx context.Context, index string, clause query.Clause) error {
	q, err := translate(clause)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(map[string]any{"query": q})
	if err != nil {
		return fmt.Errorf("marshal delete body: %w", err)
	}

	res, err := s.es.DeleteByQuery(
		[]string{index},
		bytes.NewReader(payload),
		s.es.DeleteByQuery.WithContext(ctx),
		s.es.DeleteByQuery.WithConflicts("proceed"),
		s.es.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return fmt.Errorf("delete by query %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		data, _ := io.ReadAll(res.Body)
		s.logger.Error("Delete by query failed",
			zap.String("index", index),
			zap.Int("status", res.StatusCode),
			zap.ByteString("request", payload),
			zap.String("response", strings.TrimSpace(string(data))))
		return fmt.Errorf("delete by query %s failed: %s", index, res.Status())
	}
	return nil
}

func bucketKey(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
