package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/slackbridge/slackbridge/internal/constants"
	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/logger"
	"github.com/slackbridge/slackbridge/internal/slackclient"
)

// Notifier posts feedback records to the configured webhook.
type Notifier struct {
	settings *Settings
	poster   slackclient.WebhookPoster
	logger   *slog.Logger
}

// NewNotifier creates a notifier. A nil settings value means the destination is
// unavailable and every invocation short-circuits.
func NewNotifier(settings *Settings, poster slackclient.WebhookPoster, log *slog.Logger) *Notifier {
	return &Notifier{
		settings: settings,
		poster:   poster,
		logger:   log,
	}
}

// Available reports whether webhook settings were loaded.
func (n *Notifier) Available() bool {
	return n.settings != nil
}

// Handle forwards every feedback record in event. It returns a descriptive
// message when settings are unavailable and nil otherwise; per-record failures
// are logged and skipped.
func (n *Notifier) Handle(ctx context.Context, event *Event) (*string, error) {
	reqLogger := logger.DeriveRequestLogger(ctx, n.logger)

	if !n.Available() {
		reqLogger.Error(constants.ResponseNoSlackDetails)
		msg := constants.ResponseNoSlackDetails
		return &msg, nil
	}

	if event == nil {
		return nil, nil
	}

	posted := 0
	for i := range event.Records {
		if n.handleRecord(ctx, reqLogger, i, &event.Records[i]) {
			posted++
		}
	}

	reqLogger.Info("feedback batch processed", "records", len(event.Records), "posted", posted)
	return nil, nil
}

func (n *Notifier) handleRecord(ctx context.Context, reqLogger *slog.Logger, index int, record *Record) bool {
	recLogger := reqLogger.With("record", index)

	if record.SNS == nil {
		recLogger.Warn("abandoning record: not an SNS event",
			"event_source", record.EventSource, "expected_source", constants.SNSEventSource)
		return false
	}

	if record.SNS.Subject != constants.FeedbackSubject {
		recLogger.Warn("non-feedback message in feedback topic", "subject", record.SNS.Subject)
		return false
	}

	var payload Payload
	if err := json.Unmarshal([]byte(record.SNS.Message), &payload); err != nil {
		invalid := apperrors.ErrInvalidEvent("malformed feedback payload", err)
		recLogger.Error("skipping record", "error", invalid, "message_id", record.SNS.MessageID)
		return false
	}

	msg := &slackclient.WebhookMessage{
		Text:      FormatFeedback(&payload),
		Mrkdwn:    true,
		Channel:   n.settings.Channel,
		Username:  n.settings.Name,
		IconEmoji: n.settings.Emoji,
	}

	if err := n.poster.PostWebhook(ctx, n.settings.URL, msg); err != nil {
		recLogger.Error("request failed", "error", err, "context", map[string]string{
			"error_code": apperrors.GetErrorCode(err),
			"reason":     apperrors.GetErrorDetails(err),
		})
		return false
	}

	recLogger.Info("message posted", "message_id", record.SNS.MessageID)
	return true
}

// FormatFeedback renders a payload as Slack mrkdwn.
func FormatFeedback(p *Payload) string {
	return fmt.Sprintf("`%s` (%s) from `%s` (%s) says: ```%s```",
		p.UserName, p.UserID, p.TeamDomain, p.TeamID, p.Text)
}
