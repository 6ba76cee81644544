// 의존성 조립 유틸
// HTTP 서버와 Lambda 엔트리포인트가 같은 라우터를 공유하기 위해 분리

package server

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/soc-nexus/backend/internal/cache"
	"github.com/soc-nexus/backend/internal/client"
	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/db"
	"github.com/soc-nexus/backend/internal/handler"
	"github.com/soc-nexus/backend/internal/metrics"
	"github.com/soc-nexus/backend/internal/service"
)

// Build connects every client once at process start and hands the wired
// router back with a cleanup func.
func Build(ctx context.Context, cfg config.Config) (*gin.Engine, func(), error) {
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres init: %w", err)
	}
	database := &db.Postgres{Pool: pool}

	if err := database.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("schema bootstrap: %w", err)
	}

	cacheStore, err := cache.New(cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("redis init: %w", err)
	}

	embedder, err := client.NewEmbeddingClient(cfg.Embedding)
	if err != nil {
		pool.Close()
		cacheStore.Close()
		return nil, nil, fmt.Errorf("embedding client init: %w", err)
	}

	index := client.NewPineconeClient(cfg.Pinecone)
	teams := client.NewTeamsClient(cfg.Teams)
	publisher := metrics.NewCloudWatchPublisher(ctx, cfg.Metrics)

	searchSvc := service.NewSearchService(cacheStore, embedder, index, database)
	alarmSvc := service.NewAlarmService(teams)
	healthSvc := service.NewHealthService(database, cacheStore, embedder, publisher, cfg.Server.Environment)

	router := handler.NewRouter(cfg.Server,
		handler.NewSearchHandler(searchSvc),
		handler.NewAlarmHandler(alarmSvc),
		handler.NewHealthHandler(healthSvc),
	)

	cleanup := func() {
		pool.Close()
		cacheStore.Close()
	}
	return router, cleanup, nil
}
