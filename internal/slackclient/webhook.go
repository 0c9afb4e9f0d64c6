package slackclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/slackbridge/slackbridge/internal/constants"
	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/logger"
)

const maxErrorBodyBytes = 512

// WebhookMessage is the JSON body accepted by Slack incoming webhooks.
type WebhookMessage struct {
	Text      string `json:"text"`
	Mrkdwn    bool   `json:"mrkdwn"`
	Channel   string `json:"channel"`
	Username  string `json:"username"`
	IconEmoji string `json:"icon_emoji"`
}

// WebhookPoster delivers a message to an incoming-webhook URL.
type WebhookPoster interface {
	PostWebhook(ctx context.Context, url string, msg *WebhookMessage) error
}

// WebhookClient posts webhook messages over HTTP.
type WebhookClient struct {
	httpClient *http.Client
	logger     *slog.Logger
}

var _ WebhookPoster = (*WebhookClient)(nil)

// NewWebhookClient creates a webhook client using httpClient for delivery.
func NewWebhookClient(httpClient *http.Client, log *slog.Logger) *WebhookClient {
	return &WebhookClient{httpClient: httpClient, logger: log}
}

// PostWebhook sends msg as JSON. Connection failures and non-2xx statuses are
// returned as transport errors carrying the status and reason.
func (c *WebhookClient) PostWebhook(ctx context.Context, url string, msg *WebhookMessage) error {
	reqLogger := logger.DeriveRequestLogger(ctx, c.logger)

	body, err := json.Marshal(msg)
	if err != nil {
		return apperrors.ErrInternalError("failed to marshal webhook message", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return apperrors.ErrTransport("failed to build webhook request", err)
	}
	req.Header.Set(constants.ContentTypeHeader, constants.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.ErrTransport("failed to reach webhook", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			reqLogger.Warn("failed to close webhook response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return apperrors.ErrTransport(
			fmt.Sprintf("webhook returned %s", resp.Status),
			fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(reason)),
		)
	}

	reqLogger.Debug("webhook delivered", "status", resp.StatusCode)
	return nil
}
