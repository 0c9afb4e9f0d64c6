package bot

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/slackbridge/slackbridge/internal/constants"
	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/logger"
	"github.com/slackbridge/slackbridge/internal/params"
	"github.com/slackbridge/slackbridge/internal/slackclient"
)

// Handler processes inbound Slack events for a single bot token.
type Handler struct {
	store        params.Store
	replier      slackclient.Replier
	secretPrefix string
	logger       *slog.Logger
}

// NewHandler creates a handler whose verification token lives under secretRoot/botToken.
func NewHandler(
	store params.Store,
	replier slackclient.Replier,
	secretRoot string,
	botToken string,
	log *slog.Logger,
) *Handler {
	return &Handler{
		store:        store,
		replier:      replier,
		secretPrefix: params.JoinName(secretRoot, botToken),
		logger:       log,
	}
}

// SecretPrefix returns the parameter prefix holding the verification token.
func (h *Handler) SecretPrefix() string {
	return h.secretPrefix
}

// Handle answers a challenge with its raw value, or validates a message event
// and replies with the reversed text. Dropped and replied messages both return
// constants.ResponseOK.
func (h *Handler) Handle(ctx context.Context, event *Event) (string, error) {
	reqLogger := logger.DeriveRequestLogger(ctx, h.logger)

	if event == nil {
		return "", apperrors.ErrInvalidEvent("empty event", nil)
	}

	if event.IsChallenge() {
		return h.handleChallenge(ctx, reqLogger, event)
	}

	if event.Event == nil {
		return "", apperrors.ErrInvalidEvent("event has neither a challenge nor an event body", nil)
	}

	stored, err := h.store.GetParamMap(ctx, h.secretPrefix)
	if err != nil {
		return "", err
	}

	expected, ok := stored[constants.VerificationTokenKey]
	if !ok {
		reqLogger.Warn("verification token not configured", "prefix", h.secretPrefix)
		return constants.ResponseSecretNotFound, nil
	}

	msg := event.Event
	if event.FromBot() {
		reqLogger.Info("ignoring bot event", "bot_id", msg.BotID, "channel", msg.Channel)
		return constants.ResponseOK, nil
	}

	if subtle.ConstantTimeCompare([]byte(expected), []byte(event.Token)) != 1 {
		mismatch := apperrors.ErrUnauthorized("verification token mismatch", nil)
		reqLogger.Warn("ignoring event with unknown verification token", "error", mismatch, "context", map[string]string{
			"channel":    msg.Channel,
			"error_code": apperrors.GetErrorCode(mismatch),
		})
		return constants.ResponseOK, nil
	}

	if err = h.replier.PostReply(ctx, msg.Channel, slackclient.Reverse(msg.Text)); err != nil {
		reqLogger.Error("failed to post reply", "error", err, "context", map[string]string{
			"channel":    msg.Channel,
			"error_code": apperrors.GetErrorCode(err),
		})
		return constants.ResponseOK, nil
	}

	reqLogger.Info("replied to message", "channel", msg.Channel, "user", msg.User)
	return constants.ResponseOK, nil
}

func (h *Handler) handleChallenge(ctx context.Context, reqLogger *slog.Logger, event *Event) (string, error) {
	existing, err := h.store.GetParamMap(ctx, h.secretPrefix)
	switch {
	case err != nil:
		reqLogger.Warn("could not check existing verification token", "error", err)
	case len(existing) == 0:
		reqLogger.Info("no verification token stored, creating", "prefix", h.secretPrefix)
	default:
		reqLogger.Info("overwriting verification token", "prefix", h.secretPrefix)
	}

	if err = h.store.PutParamMap(ctx, h.secretPrefix, map[string]string{
		constants.VerificationTokenKey: event.Token,
	}); err != nil {
		reqLogger.Error("failed to store verification token", "error", err)
		return "", err
	}

	reqLogger.Info("challenge answered", "type", event.Type)
	return *event.Challenge, nil
}
