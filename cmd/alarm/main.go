// CloudWatch 알람 상태 변경 이벤트를 받아 Teams로 전달하는 Lambda 엔트리포인트

package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"github.com/soc-nexus/backend/internal/client"
	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/model"
	"github.com/soc-nexus/backend/internal/service"
)

var alarmService *service.AlarmService

func init() {
	_ = godotenv.Load()
	cfg := config.Load()
	alarmService = service.NewAlarmService(client.NewTeamsClient(cfg.Teams))
}

func Handler(ctx context.Context, event model.AlarmEvent) (string, error) {
	result, err := alarmService.ProcessAlarm(ctx, event)
	if err != nil {
		log.Printf("Error processing alarm: %v", err)
		return "", err
	}
	return result, nil
}

func main() {
	lambda.Start(Handler)
}
