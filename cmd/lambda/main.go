// API Gateway(HTTP API v2) 뒤에서 검색/헬스 엔드포인트를 서빙하는 Lambda 엔트리포인트
// 로컬/컨테이너 실행은 루트 main.go, 서버리스 배포는 이 바이너리를 사용

package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/server"
)

var adapter *ginadapter.GinLambdaV2

func init() {
	cfg := config.Load()

	router, _, err := server.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}
	adapter = ginadapter.NewV2(router)
}

func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
