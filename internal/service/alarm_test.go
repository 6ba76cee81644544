package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soc-nexus/backend/internal/client"
	"github.com/soc-nexus/backend/internal/config"
	"github.com/soc-nexus/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alarmEvent(name, state string) model.AlarmEvent {
	return model.AlarmEvent{
		Detail: model.AlarmDetail{
			AlarmName: name,
			State:     model.AlarmState{Value: state, ReasonData: "Threshold Crossed"},
		},
	}
}

func TestExtractService(t *testing.T) {
	tests := []struct {
		alarmName string
		want      string
	}{
		{"frontend-latency-high", "frontend"},
		{"SOC-DB-Connections", "database"},
		{"auth-login-failures", "authentication"},
		{"openai-error-rate", "ai"},
		{"lambda-throttles", "api"},
		{"alb-5xx-count", "infrastructure"},
		{"mystery-alarm", "unknown"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.alarmName, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractService(tt.alarmName))
		})
	}
}

func TestProcessAlarmNotConfigured(t *testing.T) {
	svc := NewAlarmService(client.NewTeamsClient(config.TeamsConfig{}))

	result, err := svc.ProcessAlarm(context.Background(), alarmEvent("db-down", "ALARM"))
	require.NoError(t, err)
	assert.Equal(t, AlarmResultNotConfigured, result)
}

func TestProcessAlarmUnknownState(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	svc := NewAlarmService(client.NewTeamsClient(config.TeamsConfig{WebhookURL: ts.URL}))

	result, err := svc.ProcessAlarm(context.Background(), alarmEvent("db-down", "INSUFFICIENT_DATA"))
	require.NoError(t, err)
	assert.Equal(t, AlarmResultUnknownState, result)
	assert.Zero(t, calls, "unknown states must not hit the webhook")
}

func TestProcessAlarmDowntime(t *testing.T) {
	var card client.MessageCard
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&card))
	}))
	defer ts.Close()

	svc := NewAlarmService(client.NewTeamsClient(config.TeamsConfig{WebhookURL: ts.URL}))

	result, err := svc.ProcessAlarm(context.Background(), alarmEvent("postgres-connections-high", "ALARM"))
	require.NoError(t, err)
	assert.Equal(t, AlarmResultSent, result)
	assert.Equal(t, "MessageCard", card.Type)
	assert.Equal(t, "FF0000", card.ThemeColor)
	assert.Contains(t, card.Summary, "Database")
}

func TestProcessAlarmRecovery(t *testing.T) {
	var card client.MessageCard
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&card))
	}))
	defer ts.Close()

	svc := NewAlarmService(client.NewTeamsClient(config.TeamsConfig{WebhookURL: ts.URL}))

	result, err := svc.ProcessAlarm(context.Background(), alarmEvent("postgres-connections-high", "OK"))
	require.NoError(t, err)
	assert.Equal(t, AlarmResultSent, result)
	assert.Equal(t, "00FF00", card.ThemeColor)
}

func TestProcessAlarmWebhookFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer ts.Close()

	svc := NewAlarmService(client.NewTeamsClient(config.TeamsConfig{WebhookURL: ts.URL}))

	_, err := svc.ProcessAlarm(context.Background(), alarmEvent("db-down", "ALARM"))
	assert.Error(t, err)
}
