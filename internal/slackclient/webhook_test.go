package slackclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookClient_PostWebhook(t *testing.T) {
	ctx := context.Background()
	log := testutil.SilentLogger()
	msg := &WebhookMessage{
		Text:      "hi",
		Mrkdwn:    true,
		Channel:   "#feedback",
		Username:  "feedback-bot",
		IconEmoji: ":speech_balloon:",
	}

	t.Run("posts JSON body", func(t *testing.T) {
		var got map[string]any
		var contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			contentType = r.Header.Get("Content-Type")
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &got))
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		c := NewWebhookClient(server.Client(), log)
		err := c.PostWebhook(ctx, server.URL, msg)

		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, map[string]any{
			"text":       "hi",
			"mrkdwn":     true,
			"channel":    "#feedback",
			"username":   "feedback-bot",
			"icon_emoji": ":speech_balloon:",
		}, got)
	})

	t.Run("non-2xx status is a transport error with reason", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("no_service\n"))
		}))
		defer server.Close()

		c := NewWebhookClient(server.Client(), log)
		err := c.PostWebhook(ctx, server.URL, msg)

		require.Error(t, err)
		testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeTransportError)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "no_service")
	})

	t.Run("connection failure is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		url := server.URL
		server.Close()

		c := NewWebhookClient(http.DefaultClient, log)
		err := c.PostWebhook(ctx, url, msg)

		require.Error(t, err)
		testutil.AssertErrorType(t, err, apperrors.ErrTransportCode)
	})

	t.Run("invalid URL is a transport error", func(t *testing.T) {
		c := NewWebhookClient(http.DefaultClient, log)
		err := c.PostWebhook(ctx, "://bad", msg)

		require.Error(t, err)
		testutil.AssertErrorType(t, err, apperrors.ErrTransportCode)
	})
}
