// 외부 Pinecone 벡터 인덱스와 통신하는 클라이언트 정의
//
// 환경변수:
//   - PINECONE_API_KEY: Pinecone API key
//   - PINECONE_INDEX_HOST: 인덱스 엔드포인트 (https://<index>-<project>.svc.<env>.pinecone.io)
//
// REST API를 직접 호출하며, 인터랙티브 경로이므로 짧은 타임아웃을 사용.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/model"
)

type PineconeClient struct {
	apiKey     string
	indexHost  string
	httpClient *http.Client
}

// UpsertVector - /vectors/upsert 페이로드의 개별 벡터
type UpsertVector struct {
	ID     string    `json:"id"`
	Values []float32 `json:"values"`
}

type pineconeQueryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type pineconeQueryResponse struct {
	Matches []model.VectorMatch `json:"matches"`
}

type pineconeUpsertRequest struct {
	Vectors []UpsertVector `json:"vectors"`
}

func NewPineconeClient(cfg config.PineconeConfig) *PineconeClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &PineconeClient{
		apiKey:    cfg.APIKey,
		indexHost: cfg.IndexHost,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Query runs a similarity search and returns candidates in the index's
// native descending-score order. 임계값 필터링은 호출자 책임.
func (c *PineconeClient) Query(ctx context.Context, vector []float32, topK int) ([]model.VectorMatch, error) {
	body := pineconeQueryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: false,
	}

	var res pineconeQueryResponse
	if err := c.post(ctx, "/query", body, &res); err != nil {
		return nil, err
	}
	return res.Matches, nil
}

// Upsert writes vectors into the index (ingest path).
func (c *PineconeClient) Upsert(ctx context.Context, vectors []UpsertVector) error {
	return c.post(ctx, "/vectors/upsert", pineconeUpsertRequest{Vectors: vectors}, nil)
}

func (c *PineconeClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.indexHost+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach index: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("index returned status %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
