// 시맨틱 검색 파이프라인
//
// 요청 흐름 (실패 시 즉시 중단, 재시도 없음):
//  1. 임베딩 캐시 조회 (miss는 에러 아님)
//  2. miss면 임베딩 프로바이더 호출 후 캐시에 기록 (TTL 24h)
//  3. 벡터 인덱스 유사도 검색 (topK = matchCount)
//  4. score < matchThreshold 후보 제거 (업스트림 순서 유지)
//  5. Aurora에서 인시던트 메타데이터 일괄 조회
//  6. 각 인시던트에 위협 분석/권고 주석
//  7. 결과 캐시 기록 (TTL 10m, 실패해도 무시)

package service

import (
	"context"
	"log"

	"github.com/soc-nexus/backend/internal/model"
)

// SearchCache is the embedding/result cache surface the pipeline needs.
type SearchCache interface {
	GetEmbedding(ctx context.Context, queryText string) ([]float32, bool)
	SetEmbedding(ctx context.Context, queryText string, vector []float32) error
	SetSearchResults(ctx context.Context, q model.SearchQuery, results []model.SearchResult) error
}

// EmbeddingClient turns query text into a vector.
type EmbeddingClient interface {
	EmbedText(ctx context.Context, text string) ([]float32, string, error)
	Name() string
}

// VectorIndex runs similarity search over the external index.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int) ([]model.VectorMatch, error)
}

// IncidentRepo loads incident metadata for candidate ids.
type IncidentRepo interface {
	GetIncidentsByIDs(ctx context.Context, ids []string) ([]model.Incident, error)
}

type SearchService struct {
	cache    SearchCache
	embedder EmbeddingClient
	index    VectorIndex
	repo     IncidentRepo
}

func NewSearchService(cache SearchCache, embedder EmbeddingClient, index VectorIndex, repo IncidentRepo) *SearchService {
	return &SearchService{
		cache:    cache,
		embedder: embedder,
		index:    index,
		repo:     repo,
	}
}

func (s *SearchService) Search(ctx context.Context, q model.SearchQuery) ([]model.SearchResult, error) {
	// 1-2. 임베딩 확보 (캐시 우선)
	vector, err := s.getEmbedding(ctx, q.Text)
	if err != nil {
		return nil, err
	}

	// 3. 벡터 인덱스 조회
	matches, err := s.index.Query(ctx, vector, q.MatchCount)
	if err != nil {
		return nil, vectorIndexError(err)
	}

	// 4. 임계값 필터링 (동점 처리는 업스트림 정렬 그대로)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Score >= q.MatchThreshold {
			ids = append(ids, m.ID)
		}
	}

	// 5. 메타데이터 조회 - 실패하면 부분 결과 없이 전체 요청 중단
	incidents, err := s.repo.GetIncidentsByIDs(ctx, ids)
	if err != nil {
		return nil, metadataStoreError(err)
	}

	// 6. 위협 분석 주석
	results := make([]model.SearchResult, 0, len(incidents))
	for _, incident := range incidents {
		results = append(results, model.SearchResult{
			Incident:       incident,
			ThreatAnalysis: AnalyzeThreat(incident.AnalysisText()),
		})
	}

	// 7. 결과 캐시 (best-effort)
	if err := s.cache.SetSearchResults(ctx, q, results); err != nil {
		log.Printf("Failed to cache search results: %v", err)
	}

	return results, nil
}

// getEmbedding returns the cached vector for the exact query text, calling
// the provider and writing through on a miss.
func (s *SearchService) getEmbedding(ctx context.Context, queryText string) ([]float32, error) {
	if vector, ok := s.cache.GetEmbedding(ctx, queryText); ok {
		return vector, nil
	}

	vector, _, err := s.embedder.EmbedText(ctx, queryText)
	if err != nil {
		return nil, embeddingError(s.embedder.Name(), err)
	}

	if err := s.cache.SetEmbedding(ctx, queryText, vector); err != nil {
		// 캐시 기록 실패는 응답에 영향 없음
		log.Printf("Failed to cache embedding: %v", err)
	}
	return vector, nil
}
