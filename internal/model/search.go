// 검색 요청/응답 및 검색 결과 구조체 정의
// handler, service, cache 레이어에서 공통으로 사용

package model

import "errors"

// ErrQueryRequired is returned when the search payload has no query text.
// The message doubles as the client-facing error body.
var ErrQueryRequired = errors.New("Query is required")

const (
	DefaultMatchThreshold = 0.7
	DefaultMatchCount     = 10
)

// SearchRequest - POST /api/v1/search 페이로드
// threshold/count는 생략 가능하므로 포인터로 받아서 기본값과 구분
type SearchRequest struct {
	Query          string   `json:"query"`
	MatchThreshold *float64 `json:"matchThreshold"`
	MatchCount     *int     `json:"matchCount"`
}

// SearchQuery - 정규화된 검색 파라미터 (요청 단위, 불변)
type SearchQuery struct {
	Text           string
	MatchThreshold float64
	MatchCount     int
}

// Normalize validates the request and applies defaults.
func (r SearchRequest) Normalize() (SearchQuery, error) {
	if r.Query == "" {
		return SearchQuery{}, ErrQueryRequired
	}
	q := SearchQuery{
		Text:           r.Query,
		MatchThreshold: DefaultMatchThreshold,
		MatchCount:     DefaultMatchCount,
	}
	if r.MatchThreshold != nil {
		q.MatchThreshold = *r.MatchThreshold
	}
	if r.MatchCount != nil {
		q.MatchCount = *r.MatchCount
	}
	return q, nil
}

// VectorMatch - 벡터 인덱스가 반환하는 후보 (유사도 내림차순)
type VectorMatch struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// SearchResult - 인시던트 메타데이터 + 위협 분석 결과
type SearchResult struct {
	Incident
	ThreatAnalysis ThreatAnalysis `json:"threat_analysis"`
}

type SearchResponse struct {
	Success        bool           `json:"success"`
	Results        []SearchResult `json:"results"`
	Query          string         `json:"query"`
	MatchThreshold float64        `json:"matchThreshold"`

	// MatchCount echoes the actual result length, not the requested topK.
	MatchCount int `json:"matchCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
