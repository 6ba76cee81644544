package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/soc-nexus/backend/internal/config"
)

// NewRouter assembles the HTTP surface.
//
// 엔드포인트:
//   - POST /api/v1/search      시맨틱 인시던트 검색
//   - POST /webhook/alarm      CloudWatch 알람 수신
//   - GET  /health*            헬스체크
//   - GET  /openapi.json       OpenAPI 문서
func NewRouter(cfg config.ServerConfig, search *SearchHandler, alarm *AlarmHandler, health *HealthHandler) *gin.Engine {
	router := gin.Default()
	router.Use(RequestID())
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)

	router.GET("/health", health.Basic)
	router.GET("/health/detailed", health.Detailed)
	router.GET("/health/database", health.Database)
	router.GET("/health/cache", health.Cache)
	router.GET("/health/ai", health.AI)

	router.POST("/webhook/alarm", alarm.Webhook)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/search", search.Search)
	}

	return router
}

// Ping - 헬스체크 및 테스트용 기본 엔드포인트
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}

// Root - 루트 엔드포인트
func Root(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "SOC Nexus backend is running",
	})
}
