package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"repurpose-srv/pkg/log"
)

// IDiscord defines the interface for the Discord webhook alerting service.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
	Close() error
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage posts plain content to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{Content: content})
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	desc := description
	if err != nil {
		desc = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.post(ctx, webhookPayload{
		Embeds: []embed{{
			Title:       title,
			Description: desc,
			Color:       colorError,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// ReportBug posts a bug report message used by panic recovery and 500 handling.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendError(ctx, "Bug report", message, nil)
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("Discord webhook returned status: %d", resp.StatusCode)
	}
	return nil
}
