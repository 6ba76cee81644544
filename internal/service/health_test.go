package service

import (
	"context"
	"errors"
	"testing"

	"github.com/soc-nexus/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

type fakeAIProber struct{ err error }

func (f fakeAIProber) CheckHealth(ctx context.Context) error { return f.err }

type fakeMetricsPublisher struct {
	overall string
	probes  map[string]model.HealthStatus
}

func (f *fakeMetricsPublisher) PublishHealth(ctx context.Context, overall string, probes map[string]model.HealthStatus) {
	f.overall = overall
	f.probes = probes
}

func TestBasicHealth(t *testing.T) {
	svc := NewHealthService(fakePinger{}, fakePinger{}, fakeAIProber{}, nil, "test")

	health := svc.Basic()
	assert.Equal(t, model.HealthHealthy, health.Status)
	assert.Equal(t, "soc-nexus-backend", health.Service)
	assert.Equal(t, "test", health.Environment)
}

func TestDetailedHealthAllHealthy(t *testing.T) {
	metrics := &fakeMetricsPublisher{}
	svc := NewHealthService(fakePinger{}, fakePinger{}, fakeAIProber{}, metrics, "test")

	health := svc.Detailed(context.Background())
	assert.Equal(t, model.HealthHealthy, health.Overall)
	assert.Equal(t, model.HealthHealthy, metrics.overall, "probe results must reach the metrics publisher")
	assert.Len(t, metrics.probes, 3)
}

func TestDetailedHealthDatabaseDown(t *testing.T) {
	svc := NewHealthService(fakePinger{err: errors.New("connection refused")}, fakePinger{}, fakeAIProber{}, nil, "test")

	health := svc.Detailed(context.Background())
	assert.Equal(t, model.HealthDown, health.Overall)
	assert.Equal(t, model.HealthDown, health.Database.Status)
	assert.Equal(t, "connection refused", health.Database.Error)
	assert.Equal(t, model.HealthHealthy, health.Cache.Status)
}

func TestDetailedHealthAIDown(t *testing.T) {
	svc := NewHealthService(fakePinger{}, fakePinger{}, fakeAIProber{err: errors.New("401 unauthorized")}, nil, "test")

	health := svc.Detailed(context.Background())
	assert.Equal(t, model.HealthDown, health.Overall)
	assert.Equal(t, model.HealthDown, health.AI.Status)
}

func TestProbeRecordsResponseTime(t *testing.T) {
	svc := NewHealthService(fakePinger{}, fakePinger{}, fakeAIProber{}, nil, "test")

	status := svc.Database(context.Background())
	assert.Equal(t, model.HealthHealthy, status.Status)
	assert.GreaterOrEqual(t, status.ResponseTime, int64(0))
	assert.Empty(t, status.Error)
}
