package db

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

func embeddingInsertQuery() string {
	return `
		INSERT INTO embeddings (incident_id, content, embedding, model)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
}

// InsertEmbedding records an ingested vector alongside the text it was
// computed from, for auditing what the index was built on.
func (db *Postgres) InsertEmbedding(ctx context.Context, incidentID, content, model string, vector []float32) (int64, error) {
	var id int64
	query := embeddingInsertQuery()
	err := db.Pool.QueryRow(ctx, query, incidentID, content, pgvector.NewVector(vector), model).Scan(&id)
	return id, err
}
