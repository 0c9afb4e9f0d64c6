package slackclient

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/logger"

	"github.com/slack-go/slack"
)

// Replier posts a text message to a channel.
type Replier interface {
	PostReply(ctx context.Context, channel, text string) error
}

// WebAPIReplier posts replies with chat.postMessage, authenticated with the bot token.
type WebAPIReplier struct {
	api    *slack.Client
	logger *slog.Logger
}

var _ Replier = (*WebAPIReplier)(nil)

// NewWebAPIReplier creates a replier for the Slack Web API rooted at apiURL.
func NewWebAPIReplier(botToken, apiURL string, httpClient *http.Client, log *slog.Logger) *WebAPIReplier {
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	return &WebAPIReplier{
		api: slack.New(
			botToken,
			slack.OptionAPIURL(apiURL),
			slack.OptionHTTPClient(httpClient),
		),
		logger: log,
	}
}

// PostReply sends text to channel. Non-2xx responses and ok=false replies are
// returned as transport errors.
func (r *WebAPIReplier) PostReply(ctx context.Context, channel, text string) error {
	reqLogger := logger.DeriveRequestLogger(ctx, r.logger)

	respChannel, ts, err := r.api.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
	if err != nil {
		return apperrors.ErrTransport("failed to post reply to "+channel, err)
	}

	reqLogger.Debug("reply posted", "context", map[string]string{
		"channel": respChannel,
		"ts":      ts,
	})
	return nil
}
