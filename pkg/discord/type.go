package discord

import (
	"errors"
	"net/http"
	"time"

	"repurpose-srv/pkg/log"
)

const (
	defaultTimeout = 10 * time.Second

	colorError = 0xE74C3C
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	client  *http.Client
}

// embed represents a Discord embed message.
type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// webhookPayload represents the payload sent to the Discord webhook.
type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}
