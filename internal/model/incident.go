package model

import "time"

// Incident - incidents 테이블의 읽기 전용 메타데이터
// 이 파이프라인에서는 조회만 하고 수정하지 않음
type Incident struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	Assignee    *string    `json:"assignee"`
	AlertCount  int        `json:"alert_count"`
	Tags        []string   `json:"tags"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// AnalysisText returns the text the threat scorer runs over.
// 설명이 없으면 빈 문자열로 대체
func (i Incident) AnalysisText() string {
	desc := ""
	if i.Description != nil {
		desc = *i.Description
	}
	return i.Title + " " + desc
}

// IngestIncident - 인제스트 도구가 임베딩 대상으로 읽는 최소 필드
type IngestIncident struct {
	ID          string
	Title       string
	Description *string
}

// EmbeddingText returns the text sent to the embedding model during ingest.
func (i IngestIncident) EmbeddingText() string {
	desc := ""
	if i.Description != nil {
		desc = *i.Description
	}
	return i.Title + "\n" + desc
}
