// 헬스체크 비즈니스 로직 정의
// DB/캐시/임베딩 프로바이더를 각각 프로브하고 전체 상태를 집계

package service

import (
	"context"
	"time"

	"github.com/soc-nexus/backend/internal/model"
)

// Pinger covers dependencies with a cheap liveness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AIProber covers the embeddings provider health probe.
type AIProber interface {
	CheckHealth(ctx context.Context) error
}

// HealthMetricsPublisher ships probe results to the metrics pipeline.
// 실패해도 헬스체크 응답에는 영향 없음 (best-effort)
type HealthMetricsPublisher interface {
	PublishHealth(ctx context.Context, overall string, probes map[string]model.HealthStatus)
}

type HealthService struct {
	db      Pinger
	cache   Pinger
	ai      AIProber
	metrics HealthMetricsPublisher

	serviceName string
	version     string
	environment string
}

func NewHealthService(db Pinger, cache Pinger, ai AIProber, metrics HealthMetricsPublisher, environment string) *HealthService {
	return &HealthService{
		db:          db,
		cache:       cache,
		ai:          ai,
		metrics:     metrics,
		serviceName: "soc-nexus-backend",
		version:     "1.0.0",
		environment: environment,
	}
}

// Basic - 프로세스 자체가 살아있는지만 확인
func (s *HealthService) Basic() model.BasicHealth {
	return model.BasicHealth{
		Status:      model.HealthHealthy,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Service:     s.serviceName,
		Version:     s.version,
		Environment: s.environment,
	}
}

// Database probes the relational store.
func (s *HealthService) Database(ctx context.Context) model.HealthStatus {
	return s.probe(ctx, func(ctx context.Context) error { return s.db.Ping(ctx) })
}

// Cache probes the cache store.
func (s *HealthService) Cache(ctx context.Context) model.HealthStatus {
	return s.probe(ctx, func(ctx context.Context) error { return s.cache.Ping(ctx) })
}

// AI probes the embeddings provider.
func (s *HealthService) AI(ctx context.Context) model.HealthStatus {
	return s.probe(ctx, func(ctx context.Context) error { return s.ai.CheckHealth(ctx) })
}

// Detailed runs every probe, rolls up the overall status, and publishes
// the result to the metrics pipeline.
func (s *HealthService) Detailed(ctx context.Context) model.DetailedHealth {
	result := model.DetailedHealth{
		Database:  s.Database(ctx),
		Cache:     s.Cache(ctx),
		AI:        s.AI(ctx),
		Overall:   model.HealthHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	probes := map[string]model.HealthStatus{
		"database": result.Database,
		"cache":    result.Cache,
		"ai":       result.AI,
	}

	for _, probe := range probes {
		if probe.Status == model.HealthDown {
			result.Overall = model.HealthDown
			break
		}
		if probe.Status == model.HealthDegraded {
			result.Overall = model.HealthDegraded
		}
	}

	if s.metrics != nil {
		s.metrics.PublishHealth(ctx, result.Overall, probes)
	}

	return result
}

func (s *HealthService) probe(ctx context.Context, check func(ctx context.Context) error) model.HealthStatus {
	start := time.Now()
	if err := check(ctx); err != nil {
		return model.HealthStatus{
			Status: model.HealthDown,
			Error:  err.Error(),
		}
	}
	return model.HealthStatus{
		Status:       model.HealthHealthy,
		ResponseTime: time.Since(start).Milliseconds(),
	}
}
