// CloudWatch 알람 웹훅 요청을 처리하는 핸들러
//
// 요청 흐름:
//  1. EventBridge 규칙이 POST /webhook/alarm으로 알람 상태 변경 전송
//  2. JSON 페이로드를 AlarmEvent 구조체로 파싱
//  3. service 레이어에서 Teams 카드 변환 및 전송

package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soc-nexus/backend/internal/model"
	"github.com/soc-nexus/backend/internal/service"
)

type AlarmHandler struct {
	alarmService *service.AlarmService
}

func NewAlarmHandler(alarmService *service.AlarmService) *AlarmHandler {
	return &AlarmHandler{alarmService: alarmService}
}

// Webhook godoc
// @Summary Receive CloudWatch alarm state changes
// @Tags alarms
// @Accept json
// @Produce json
// @Param request body model.AlarmEvent true "Alarm state-change event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /webhook/alarm [post]
func (h *AlarmHandler) Webhook(c *gin.Context) {
	var event model.AlarmEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		log.Printf("Failed to parse alarm event: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	log.Printf("Received alarm event: alarm=%s, state=%s", event.AlarmName(), event.StateValue())

	result, err := h.alarmService.ProcessAlarm(c.Request.Context(), event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": result})
}
