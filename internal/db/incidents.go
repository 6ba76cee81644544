package db

import (
	"context"

	"github.com/soc-nexus/backend/internal/model"
)

// GetIncidentsByIDs loads full incident rows for the matched candidate ids.
// 빈 id 목록이면 쿼리를 보내지 않고 빈 슬라이스 반환 (빈 배열 쿼리 방지)
func (db *Postgres) GetIncidentsByIDs(ctx context.Context, ids []string) ([]model.Incident, error) {
	if len(ids) == 0 {
		return []model.Incident{}, nil
	}

	query := `
		SELECT id, title, description, severity, status, assignee, alert_count, tags, created_at, updated_at
		FROM incidents
		WHERE id = ANY($1)`

	rows, err := db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Incident{}
	for rows.Next() {
		var i model.Incident
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.Severity,
			&i.Status,
			&i.Assignee,
			&i.AlertCount,
			&i.Tags,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, i)
	}

	return list, rows.Err()
}

// ListIncidentsForIngest - 인제스트 도구가 임베딩할 전체 인시던트 조회
func (db *Postgres) ListIncidentsForIngest(ctx context.Context) ([]model.IngestIncident, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, title, description FROM incidents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.IngestIncident
	for rows.Next() {
		var i model.IngestIncident
		if err := rows.Scan(&i.ID, &i.Title, &i.Description); err != nil {
			return nil, err
		}
		list = append(list, i)
	}

	return list, rows.Err()
}

// EnsureSchema - incidents, embeddings 테이블이 없으면 생성 (멱등)
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`
		CREATE TABLE IF NOT EXISTS incidents (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT,
			severity TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'open',
			assignee TEXT,
			alert_count INTEGER NOT NULL DEFAULT 0,
			tags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS embeddings (
			id BIGSERIAL PRIMARY KEY,
			incident_id TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			embedding vector(1536),
			model TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS incidents_status_idx ON incidents(status)`,
		`CREATE INDEX IF NOT EXISTS embeddings_incident_id_idx ON embeddings(incident_id)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
