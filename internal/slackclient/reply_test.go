package slackclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedReply struct {
	path    string
	token   string
	channel string
	text    string
}

func newSlackAPIServer(t *testing.T, response string, status int, posted *[]postedReply) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		token := r.PostForm.Get("token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		*posted = append(*posted, postedReply{
			path:    r.URL.Path,
			token:   token,
			channel: r.PostForm.Get("channel"),
			text:    r.PostForm.Get("text"),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestWebAPIReplier_PostReply(t *testing.T) {
	ctx := context.Background()
	log := testutil.SilentLogger()

	t.Run("posts form with token channel and text", func(t *testing.T) {
		var posted []postedReply
		server := newSlackAPIServer(t, `{"ok":true,"channel":"C1","ts":"1"}`, http.StatusOK, &posted)

		r := NewWebAPIReplier("xoxb-test", server.URL+"/api", server.Client(), log)
		err := r.PostReply(ctx, "C1", "olleh")

		require.NoError(t, err)
		require.Len(t, posted, 1)
		assert.Equal(t, "/api/chat.postMessage", posted[0].path)
		assert.Equal(t, "xoxb-test", posted[0].token)
		assert.Equal(t, "C1", posted[0].channel)
		assert.Equal(t, "olleh", posted[0].text)
	})

	t.Run("ok false is a transport error", func(t *testing.T) {
		var posted []postedReply
		server := newSlackAPIServer(t, `{"ok":false,"error":"channel_not_found"}`, http.StatusOK, &posted)

		r := NewWebAPIReplier("xoxb-test", server.URL+"/api/", server.Client(), log)
		err := r.PostReply(ctx, "C404", "x")

		require.Error(t, err)
		testutil.AssertAppErrorCode(t, err, apperrors.ErrCodeTransportError)
		assert.Contains(t, err.Error(), "channel_not_found")
	})

	t.Run("server error is a transport error", func(t *testing.T) {
		var posted []postedReply
		server := newSlackAPIServer(t, `oops`, http.StatusInternalServerError, &posted)

		r := NewWebAPIReplier("xoxb-test", server.URL+"/api/", server.Client(), log)
		err := r.PostReply(ctx, "C1", "x")

		require.Error(t, err)
		testutil.AssertErrorType(t, err, apperrors.ErrTransportCode)
	})
}
