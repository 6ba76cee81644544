package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soc-nexus/backend/internal/model"
	"github.com/soc-nexus/backend/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Semantic incident search
// @Tags search
// @Accept json
// @Produce json
// @Param request body model.SearchRequest true "Search payload"
// @Success 200 {object} model.SearchResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := req.Normalize()
	if err != nil {
		// 쿼리 누락은 업스트림 호출 전에 거절
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		// 실패한 업스트림을 에러 본문에 명시
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstream.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SearchResponse{
		Success:        true,
		Results:        results,
		Query:          q.Text,
		MatchThreshold: q.MatchThreshold,
		MatchCount:     len(results),
	})
}
