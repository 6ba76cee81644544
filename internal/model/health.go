package model

// Health statuses, worst first when rolling up.
const (
	HealthDown     = "down"
	HealthDegraded = "degraded"
	HealthHealthy  = "healthy"
)

// HealthStatus - 개별 서비스 프로브 결과
type HealthStatus struct {
	Status string `json:"status"`

	// ResponseTime in milliseconds; 0 when the probe never completed.
	ResponseTime int64  `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// DetailedHealth - /health/detailed 응답
type DetailedHealth struct {
	Database  HealthStatus `json:"database"`
	Cache     HealthStatus `json:"cache"`
	AI        HealthStatus `json:"ai"`
	Overall   string       `json:"overall"`
	Timestamp string       `json:"timestamp"`
}

// BasicHealth - /health 응답
type BasicHealth struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}
