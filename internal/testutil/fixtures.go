// Package testutil provides shared testing utilities and helpers.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/slack-go/slack/slackevents"
)

const testContextTimeout = 5 * time.Second

// MessageEventBuilder provides a fluent interface for building Slack message events.
type MessageEventBuilder struct {
	event *slackevents.MessageEvent
}

// NewMessageEventBuilder creates a human message event with sensible defaults.
func NewMessageEventBuilder() *MessageEventBuilder {
	return &MessageEventBuilder{
		event: &slackevents.MessageEvent{
			Type:    "message",
			User:    "U123",
			Text:    "hello",
			Channel: "C123",
		},
	}
}

// WithText sets the message text.
func (b *MessageEventBuilder) WithText(text string) *MessageEventBuilder {
	b.event.Text = text
	return b
}

// WithChannel sets the originating channel.
func (b *MessageEventBuilder) WithChannel(channel string) *MessageEventBuilder {
	b.event.Channel = channel
	return b
}

// FromBot marks the message as posted by a bot.
func (b *MessageEventBuilder) FromBot(botID string) *MessageEventBuilder {
	b.event.BotID = botID
	return b
}

// Build returns the constructed event.
func (b *MessageEventBuilder) Build() *slackevents.MessageEvent {
	return b.event
}

// FeedbackPayload returns the JSON string carried in a feedback SNS message.
func FeedbackPayload(t *testing.T, userName, userID, teamDomain, teamID, text string) string {
	t.Helper()
	data, err := json.Marshal(map[string]string{
		"user_name":   userName,
		"user_id":     userID,
		"team_domain": teamDomain,
		"team_id":     teamID,
		"text":        text,
	})
	if err != nil {
		t.Fatalf("failed to marshal feedback payload: %v", err)
	}
	return string(data)
}

// TestContext creates a test context with a reasonable timeout, cancelled when the test ends.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testContextTimeout)
	t.Cleanup(cancel)
	return ctx
}

// SilentLogger creates a logger that discards all output.
func SilentLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// BufferLogger creates a debug-level JSON logger writing into the returned buffer.
func BufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
