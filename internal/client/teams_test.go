package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/soc-nexus/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamsSendDowntimeCard(t *testing.T) {
	var got MessageCard
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer ts.Close()

	c := NewTeamsClient(config.TeamsConfig{WebhookURL: ts.URL})
	card := NewDowntimeCard("database", "Threshold Crossed", "db-connections-high")

	require.NoError(t, c.Send(context.Background(), card))

	assert.Equal(t, "MessageCard", got.Type)
	assert.Equal(t, "http://schema.org/extensions", got.Context)
	assert.Equal(t, "FF0000", got.ThemeColor)
	assert.Equal(t, "🚨 Database Service Down", got.Summary)

	require.Len(t, got.Sections, 1)
	facts := map[string]string{}
	for _, f := range got.Sections[0].Facts {
		facts[f.Name] = f.Value
	}
	assert.Equal(t, "Database", facts["Service"])
	assert.Equal(t, "DOWN", facts["Status"])
	assert.Equal(t, "db-connections-high", facts["Alarm"])
	assert.Equal(t, "Threshold Crossed", facts["Reason"])

	require.Len(t, got.PotentialAction, 3)
	assert.Equal(t, "OpenUri", got.PotentialAction[0].Type)
	assert.Equal(t, "https://dashboard.soc-nexus.com", got.PotentialAction[0].Targets[0].URI)
}

func TestTeamsSendRecoveryCard(t *testing.T) {
	card := NewRecoveryCard("api", "Threshold no longer breached", "api-5xx")

	assert.Equal(t, "00FF00", card.ThemeColor)
	assert.Equal(t, "✅ Api Service Recovered", card.Summary)
	require.Len(t, card.Sections, 1)
	assert.Equal(t, "✅ Service Recovered: Api", card.Sections[0].ActivityTitle)
	assert.Len(t, card.PotentialAction, 2)
}

func TestTeamsSendMaintenanceCard(t *testing.T) {
	card := NewMaintenanceCard("database", "Version upgrade", "2026-09-01 02:00 UTC", "30 minutes")

	assert.Equal(t, "FFA500", card.ThemeColor)
	assert.Equal(t, "🔧 Database Maintenance Scheduled", card.Summary)
}

func TestTeamsSendNotConfigured(t *testing.T) {
	c := NewTeamsClient(config.TeamsConfig{})
	err := c.Send(context.Background(), NewDowntimeCard("api", "r", "a"))
	assert.Error(t, err)
}

func TestTeamsSendErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid payload", http.StatusBadRequest)
	}))
	defer ts.Close()

	c := NewTeamsClient(config.TeamsConfig{WebhookURL: ts.URL})
	err := c.Send(context.Background(), NewDowntimeCard("api", "r", "a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
