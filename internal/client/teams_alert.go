// Teams Alert 메시지 카드 빌더 정의

package client

import (
	"fmt"
	"strings"
	"time"
)

const (
	colorDown        = "FF0000"
	colorRecovered   = "00FF00"
	colorMaintenance = "FFA500"

	dashboardURL  = "https://dashboard.soc-nexus.com"
	statusPageURL = "https://status.soc-nexus.com"
	cloudWatchURL = "https://console.aws.amazon.com/cloudwatch/home"
)

// NewDowntimeCard - 서비스 장애 알림 카드
func NewDowntimeCard(service, reason, alarmName string) MessageCard {
	now := time.Now().UTC()
	title := capitalize(service)

	return MessageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: colorDown,
		Summary:    fmt.Sprintf("🚨 %s Service Down", title),
		Sections: []CardSection{
			{
				ActivityTitle:    fmt.Sprintf("🚨 Critical Service Alert: %s", title),
				ActivitySubtitle: now.Format(time.RFC3339),
				Facts: []CardFact{
					{Name: "Service", Value: title},
					{Name: "Status", Value: "DOWN"},
					{Name: "Alarm", Value: alarmName},
					{Name: "Reason", Value: reason},
					{Name: "Time", Value: now.Format("2006-01-02 15:04:05 UTC")},
				},
			},
		},
		PotentialAction: []OpenURIAction{
			openURI("View Dashboard", dashboardURL),
			openURI("Check Status Page", statusPageURL),
			openURI("View CloudWatch", cloudWatchURL),
		},
	}
}

// NewRecoveryCard - 서비스 복구 알림 카드
func NewRecoveryCard(service, reason, alarmName string) MessageCard {
	now := time.Now().UTC()
	title := capitalize(service)

	return MessageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: colorRecovered,
		Summary:    fmt.Sprintf("✅ %s Service Recovered", title),
		Sections: []CardSection{
			{
				ActivityTitle:    fmt.Sprintf("✅ Service Recovered: %s", title),
				ActivitySubtitle: now.Format(time.RFC3339),
				Facts: []CardFact{
					{Name: "Service", Value: title},
					{Name: "Status", Value: "HEALTHY"},
					{Name: "Alarm", Value: alarmName},
					{Name: "Recovery Time", Value: now.Format("2006-01-02 15:04:05 UTC")},
				},
			},
		},
		PotentialAction: []OpenURIAction{
			openURI("View Dashboard", dashboardURL),
			openURI("Check Status Page", statusPageURL),
		},
	}
}

// NewEscalationCard - 장애 장기화 에스컬레이션 카드 (운영 도구용)
func NewEscalationCard(service, downtimeDuration, escalationLevel string) MessageCard {
	now := time.Now().UTC()
	title := capitalize(service)

	return MessageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: colorDown,
		Summary:    fmt.Sprintf("🚨 ESCALATION: %s Still Down", title),
		Sections: []CardSection{
			{
				ActivityTitle:    fmt.Sprintf("🚨 ESCALATION ALERT: %s", title),
				ActivitySubtitle: now.Format(time.RFC3339),
				Facts: []CardFact{
					{Name: "Service", Value: title},
					{Name: "Downtime Duration", Value: downtimeDuration},
					{Name: "Escalation Level", Value: escalationLevel},
					{Name: "Priority", Value: "HIGH"},
					{Name: "Time", Value: now.Format("2006-01-02 15:04:05 UTC")},
				},
			},
		},
		PotentialAction: []OpenURIAction{
			openURI("View Incident", dashboardURL+"/incidents"),
			openURI("Contact On-Call", "https://teams.microsoft.com/l/chat/0/0?users=oncall@soc-nexus.com"),
		},
	}
}

// NewMaintenanceCard - 예정 점검 알림 카드 (운영 도구용)
func NewMaintenanceCard(service, maintenanceType, scheduledTime, duration string) MessageCard {
	now := time.Now().UTC()
	title := capitalize(service)

	return MessageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: colorMaintenance,
		Summary:    fmt.Sprintf("🔧 %s Maintenance Scheduled", title),
		Sections: []CardSection{
			{
				ActivityTitle:    fmt.Sprintf("🔧 Maintenance Alert: %s", title),
				ActivitySubtitle: now.Format(time.RFC3339),
				Facts: []CardFact{
					{Name: "Service", Value: title},
					{Name: "Type", Value: maintenanceType},
					{Name: "Scheduled Time", Value: scheduledTime},
					{Name: "Expected Duration", Value: duration},
					{Name: "Impact", Value: "Planned downtime"},
				},
			},
		},
		PotentialAction: []OpenURIAction{
			openURI("View Status Page", statusPageURL),
		},
	}
}

func openURI(name, uri string) OpenURIAction {
	return OpenURIAction{
		Type:    "OpenUri",
		Name:    name,
		Targets: []ActionTarget{{OS: "default", URI: uri}},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
