// 외부 Teams Incoming Webhook과 통신하는 클라이언트 정의
// Client 레이어에서만 사용하는 MessageCard 구조체 및 전송 메서드 정의
//
// 환경변수:
//   - TEAMS_WEBHOOK_URL: Teams Incoming Webhook URL

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/soc-nexus/backend/internal/config"
)

type TeamsClient struct {
	webhookURL string
	httpClient *http.Client
}

// MessageCard - Teams 레거시 MessageCard 페이로드
type MessageCard struct {
	Type            string          `json:"@type"`
	Context         string          `json:"@context"`
	ThemeColor      string          `json:"themeColor"`
	Summary         string          `json:"summary"`
	Sections        []CardSection   `json:"sections"`
	PotentialAction []OpenURIAction `json:"potentialAction,omitempty"`
}

type CardSection struct {
	ActivityTitle    string     `json:"activityTitle"`
	ActivitySubtitle string     `json:"activitySubtitle"`
	Facts            []CardFact `json:"facts"`
}

type CardFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type OpenURIAction struct {
	Type    string         `json:"@type"`
	Name    string         `json:"name"`
	Targets []ActionTarget `json:"targets"`
}

type ActionTarget struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

func NewTeamsClient(cfg config.TeamsConfig) *TeamsClient {
	return &TeamsClient{
		webhookURL: cfg.WebhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsConfigured - Webhook URL이 설정되어 있는지 체크
func (c *TeamsClient) IsConfigured() bool {
	return c.webhookURL != ""
}

// Send posts a card to the webhook.
func (c *TeamsClient) Send(ctx context.Context, card MessageCard) error {
	if !c.IsConfigured() {
		return fmt.Errorf("teams webhook URL not configured")
	}

	payload, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("teams webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
