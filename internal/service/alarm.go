// CloudWatch 알람 처리 비즈니스 로직 정의
// 알람 이벤트를 Teams MessageCard로 변환해서 client로 전송
//
// 처리 흐름:
//  1. Webhook URL 미설정이면 전송 없이 종료
//  2. 알람 이름에서 서비스 이름 추출
//  3. ALARM → 장애 카드, OK → 복구 카드, 그 외 상태는 무시
//  4. TeamsClient로 전송

package service

import (
	"context"
	"log"
	"strings"

	"github.com/soc-nexus/backend/internal/client"
	"github.com/soc-nexus/backend/internal/model"
)

// Acknowledgement messages returned to the alarm source.
const (
	AlarmResultNotConfigured = "Teams webhook not configured"
	AlarmResultUnknownState  = "Unknown alarm state"
	AlarmResultSent          = "Teams notification sent"
)

// servicePatterns maps alarm-name keywords to service names.
// 먼저 걸리는 항목이 이긴다.
var servicePatterns = []struct {
	service  string
	keywords []string
}{
	{"frontend", []string{"frontend", "ui", "web", "app"}},
	{"database", []string{"database", "db", "postgres", "supabase"}},
	{"authentication", []string{"auth", "login", "sso"}},
	{"ai", []string{"ai", "openai", "gpt", "ml"}},
	{"api", []string{"api", "lambda", "backend"}},
	{"infrastructure", []string{"alb", "ec2", "rds", "cloudfront"}},
}

type AlarmService struct {
	teams *client.TeamsClient
}

func NewAlarmService(teams *client.TeamsClient) *AlarmService {
	return &AlarmService{teams: teams}
}

// ProcessAlarm maps an alarm state change to a chat notification.
// 반환되는 문자열은 호출자(알람 소스)에 돌려줄 처리 결과.
func (s *AlarmService) ProcessAlarm(ctx context.Context, event model.AlarmEvent) (string, error) {
	if !s.teams.IsConfigured() {
		log.Printf("Teams webhook URL not configured, skipping alarm %s", event.AlarmName())
		return AlarmResultNotConfigured, nil
	}

	serviceName := ExtractService(event.AlarmName())

	var card client.MessageCard
	switch event.StateValue() {
	case "ALARM":
		card = client.NewDowntimeCard(serviceName, event.Reason(), event.AlarmName())
	case "OK":
		card = client.NewRecoveryCard(serviceName, event.Reason(), event.AlarmName())
	default:
		log.Printf("Unknown alarm state: %s", event.StateValue())
		return AlarmResultUnknownState, nil
	}

	if err := s.teams.Send(ctx, card); err != nil {
		return "", err
	}

	log.Printf("Teams notification sent for %s (alarm=%s, state=%s)",
		serviceName, event.AlarmName(), event.StateValue())
	return AlarmResultSent, nil
}

// ExtractService guesses the affected service from the alarm name.
func ExtractService(alarmName string) string {
	lower := strings.ToLower(alarmName)
	for _, entry := range servicePatterns {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.service
			}
		}
	}
	return "unknown"
}
