// Package app assembles the slackbridge handlers from configuration and a parameter store.
// It is shared by the Lambda entry points, the local server and the CLI.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/slackbridge/slackbridge/internal/bot"
	"github.com/slackbridge/slackbridge/internal/config"
	"github.com/slackbridge/slackbridge/internal/feedback"
	"github.com/slackbridge/slackbridge/internal/params"
	"github.com/slackbridge/slackbridge/internal/slackclient"
)

// NewHTTPClient returns the client used for every outbound Slack call.
func NewHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

// NewInbound builds the inbound Slack event handler.
func NewInbound(cfg *config.Config, store params.Store, httpClient *http.Client, log *slog.Logger) *bot.Handler {
	replier := slackclient.NewWebAPIReplier(cfg.BotToken, cfg.SlackAPIURL, httpClient, log)
	h := bot.NewHandler(store, replier, cfg.SecretRoot, cfg.BotToken, log)

	log.Debug("inbound handler configured", "context", map[string]string{
		"secret_prefix": h.SecretPrefix(),
		"slack_api_url": cfg.SlackAPIURL,
		"bot_version":   cfg.BotVersion,
	})
	return h
}

// NewNotifier loads the webhook settings once and builds the feedback notifier.
// Unavailable settings are logged and yield a notifier that reports them on every call.
func NewNotifier(
	ctx context.Context,
	cfg *config.Config,
	store params.Store,
	httpClient *http.Client,
	log *slog.Logger,
) *feedback.Notifier {
	settings, err := feedback.LoadSettings(ctx, store, cfg.ParamRoot, log)
	if err != nil {
		log.Error("slack details unavailable", "error", err, "param_root", cfg.ParamRoot)
		settings = nil
	}

	return feedback.NewNotifier(settings, slackclient.NewWebhookClient(httpClient, log), log)
}
