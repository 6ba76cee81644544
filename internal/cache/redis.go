// Redis 캐시 레이어
//
// 두 가지 캐시를 담당:
//   - 임베딩 캐시: embedding:<원본 쿼리 텍스트>, TTL 24h
//   - 결과 캐시: search:<쿼리>:<threshold>:<count>, TTL 10m (쓰기 전용)
//
// 키는 원본 쿼리 텍스트 그대로 사용 (정규화 없음 - 대소문자/공백 구분).
// 임베딩 프로바이더에 넘기는 문자열과 키가 정확히 일치해야 하기 때문.

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/model"
)

const (
	EmbeddingTTL = 24 * time.Hour
	ResultTTL    = 10 * time.Minute
)

type Cache struct {
	rdb *redis.Client
}

func New(cfg config.RedisConfig) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{rdb: rdb}, nil
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Ping - 헬스체크용
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func embeddingKey(queryText string) string {
	return "embedding:" + queryText
}

func resultKey(q model.SearchQuery) string {
	return "search:" + q.Text +
		":" + strconv.FormatFloat(q.MatchThreshold, 'g', -1, 64) +
		":" + strconv.Itoa(q.MatchCount)
}

// GetEmbedding looks up a previously computed vector for the query text.
// 캐시 미스나 역직렬화 실패는 에러가 아니라 미스로 취급 (best-effort)
func (c *Cache) GetEmbedding(ctx context.Context, queryText string) ([]float32, bool) {
	raw, err := c.rdb.Get(ctx, embeddingKey(queryText)).Result()
	if err != nil {
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal([]byte(raw), &vector); err != nil {
		return nil, false
	}
	return vector, true
}

// SetEmbedding caches a vector for 24 hours.
func (c *Cache) SetEmbedding(ctx context.Context, queryText string, vector []float32) error {
	raw, err := json.Marshal(vector)
	if err != nil {
		return fmt.Errorf("failed to marshal embedding: %w", err)
	}
	return c.rdb.Set(ctx, embeddingKey(queryText), raw, EmbeddingTTL).Err()
}

// SetSearchResults caches an assembled response for 10 minutes.
// 읽기 경로는 없음 - 실패해도 요청을 중단하지 않는다.
func (c *Cache) SetSearchResults(ctx context.Context, q model.SearchQuery, results []model.SearchResult) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal search results: %w", err)
	}
	return c.rdb.Set(ctx, resultKey(q), raw, ResultTTL).Err()
}
