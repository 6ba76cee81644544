// 인시던트 인제스트 도구
//
// Aurora의 전체 인시던트를 읽어 임베딩하고 벡터 인덱스에 업서트한다.
// 각 벡터는 감사용으로 embeddings 테이블에도 기록.
//
// 사용법:
//   go run ./cmd/ingest

package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/soc-nexus/backend/internal/client"
	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/db"
)

// upsertBatchSize keeps each index request well under the payload limit.
const upsertBatchSize = 100

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	database := &db.Postgres{Pool: pool}

	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	embedder, err := client.NewEmbeddingClient(cfg.Embedding)
	if err != nil {
		log.Fatalf("Failed to build embedding client: %v", err)
	}
	index := client.NewPineconeClient(cfg.Pinecone)

	incidents, err := database.ListIncidentsForIngest(ctx)
	if err != nil {
		log.Fatalf("Failed to list incidents: %v", err)
	}
	log.Printf("Embedding %d incidents", len(incidents))

	batch := make([]client.UpsertVector, 0, upsertBatchSize)
	total := 0
	for _, incident := range incidents {
		text := incident.EmbeddingText()

		vector, modelName, err := embedder.EmbedText(ctx, text)
		if err != nil {
			log.Fatalf("Failed to embed incident %s: %v", incident.ID, err)
		}

		if _, err := database.InsertEmbedding(ctx, incident.ID, text, modelName, vector); err != nil {
			log.Fatalf("Failed to record embedding for incident %s: %v", incident.ID, err)
		}

		batch = append(batch, client.UpsertVector{ID: incident.ID, Values: vector})
		if len(batch) == upsertBatchSize {
			if err := index.Upsert(ctx, batch); err != nil {
				log.Fatalf("Failed to upsert batch: %v", err)
			}
			total += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := index.Upsert(ctx, batch); err != nil {
			log.Fatalf("Failed to upsert batch: %v", err)
		}
		total += len(batch)
	}

	log.Printf("Upserted %d incidents to the vector index", total)
}
