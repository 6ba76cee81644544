// CloudWatch 메트릭 발행기
// 헬스체크 결과를 SOC-Nexus/Health 네임스페이스로 전송 (best-effort)

package metrics

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	appconfig "github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/model"
)

type CloudWatchPublisher struct {
	client    *cloudwatch.Client
	namespace string
	enabled   bool
}

// NewCloudWatchPublisher builds the publisher from the ambient AWS config.
// 자격 증명이 없으면 발행을 끄고 진행 (로컬 개발 환경 고려)
func NewCloudWatchPublisher(ctx context.Context, cfg appconfig.MetricsConfig) *CloudWatchPublisher {
	if !cfg.Enabled {
		return &CloudWatchPublisher{}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("CloudWatch metrics disabled: %v", err)
		return &CloudWatchPublisher{}
	}

	return &CloudWatchPublisher{
		client:    cloudwatch.NewFromConfig(awsCfg),
		namespace: cfg.Namespace,
		enabled:   true,
	}
}

// PublishHealth ships the overall flag plus per-service health and latency.
func (p *CloudWatchPublisher) PublishHealth(ctx context.Context, overall string, probes map[string]model.HealthStatus) {
	if !p.enabled {
		return
	}

	now := time.Now().UTC()
	data := []types.MetricDatum{
		{
			MetricName: aws.String("OverallHealth"),
			Value:      aws.Float64(boolMetric(overall == model.HealthHealthy)),
			Unit:       types.StandardUnitNone,
			Timestamp:  aws.Time(now),
		},
	}

	for name, probe := range probes {
		data = append(data,
			types.MetricDatum{
				MetricName: aws.String(capitalize(name) + "Health"),
				Value:      aws.Float64(boolMetric(probe.Status == model.HealthHealthy)),
				Unit:       types.StandardUnitNone,
				Timestamp:  aws.Time(now),
			},
			types.MetricDatum{
				MetricName: aws.String(capitalize(name) + "ResponseTime"),
				Value:      aws.Float64(float64(probe.ResponseTime)),
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  aws.Time(now),
			},
		)
	}

	_, err := p.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(p.namespace),
		MetricData: data,
	})
	if err != nil {
		log.Printf("Failed to send metrics to CloudWatch: %v", err)
	}
}

func boolMetric(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
