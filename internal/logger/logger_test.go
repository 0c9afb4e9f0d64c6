package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/slackbridge/slackbridge/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenMapAttr(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		value    any
		expected string
	}{
		{
			name:   "simple map[string]string",
			prefix: "",
			value: map[string]string{
				"subject": "feedback",
				"channel": "C123",
			},
			expected: "channel=C123 subject=feedback",
		},
		{
			name:   "simple map[string]any",
			prefix: "",
			value: map[string]any{
				"count": 3,
				"name":  "test",
			},
			expected: "count=3 name=test",
		},
		{
			name:   "nested map",
			prefix: "record",
			value: map[string]any{
				"index": 1,
				"sns": map[string]string{
					"subject": "feedback",
				},
			},
			expected: "record.index=1 record.sns.subject=feedback",
		},
		{
			name:     "non-map value",
			prefix:   "",
			value:    "simple string",
			expected: "simple string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, flattenMapAttr(tt.prefix, tt.value))
		})
	}
}

func TestReplaceAttrForDev(t *testing.T) {
	t.Run("map attr gets flattened", func(t *testing.T) {
		result := replaceAttrForDev(nil, slog.Any("context", map[string]string{"prefix": "/feedback"}))
		assert.Equal(t, "context.prefix=/feedback", result.Value.String())
	})

	t.Run("string attr unchanged", func(t *testing.T) {
		result := replaceAttrForDev(nil, slog.String("message", "hello"))
		assert.Equal(t, "hello", result.Value.String())
	})

	t.Run("int attr unchanged", func(t *testing.T) {
		result := replaceAttrForDev(nil, slog.Int("count", 42))
		assert.Equal(t, int64(42), result.Value.Int64())
	})
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name  string
		env   constants.Environment
		level slog.Level
	}{
		{"production environment with info level", constants.Production, slog.LevelInfo},
		{"development environment with debug level", constants.Development, slog.LevelDebug},
		{"CLI environment with warn level", constants.CLI, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Initialize(tt.env, tt.level)

			assert.NotNil(t, logger)
			assert.Equal(t, logger, slog.Default())
		})
	}
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{"empty context", context.Background(), ""},
		{"context with request ID", WithRequestID(context.Background(), "req-1"), "req-1"},
		{"context with wrong type", context.WithValue(context.Background(), requestIDContextKey, 12345), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetRequestID(tt.ctx))
		})
	}
}

type mockContextExtractor struct {
	requestID  string
	shouldFind bool
}

func (m *mockContextExtractor) ExtractRequestID(_ context.Context) (string, bool) {
	return m.requestID, m.shouldFind
}

func TestDeriveRequestLogger(t *testing.T) {
	t.Run("nil base logger returns default", func(t *testing.T) {
		assert.NotNil(t, DeriveRequestLogger(context.Background(), nil))
	})

	t.Run("context with request ID", func(t *testing.T) {
		buf := &bytes.Buffer{}
		base := slog.New(slog.NewJSONHandler(buf, nil))

		DeriveRequestLogger(WithRequestID(context.Background(), "req-123"), base).Info("test message")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-123", entry[constants.RequestIDLogField])
		assert.Equal(t, "test message", entry["msg"])
	})

	t.Run("falls back to registered extractor", func(t *testing.T) {
		original := contextExtractors
		defer func() { contextExtractors = original }()

		ClearContextExtractors()
		RegisterContextExtractor(&mockContextExtractor{requestID: "ignored", shouldFind: false})
		RegisterContextExtractor(&mockContextExtractor{requestID: "lambda-req-456", shouldFind: true})

		buf := &bytes.Buffer{}
		base := slog.New(slog.NewJSONHandler(buf, nil))
		DeriveRequestLogger(context.Background(), base).Info("lambda test")

		assert.Contains(t, buf.String(), "lambda-req-456")
		assert.NotContains(t, buf.String(), "ignored")
	})

	t.Run("context without request ID", func(t *testing.T) {
		original := contextExtractors
		defer func() { contextExtractors = original }()
		ClearContextExtractors()

		buf := &bytes.Buffer{}
		base := slog.New(slog.NewJSONHandler(buf, nil))
		DeriveRequestLogger(context.Background(), base).Info("no request id")

		assert.NotContains(t, buf.String(), constants.RequestIDLogField)
	})
}

func TestGetDeadlineInfo(t *testing.T) {
	t.Run("context without deadline", func(t *testing.T) {
		attrs := GetDeadlineInfo(context.Background())

		require.Len(t, attrs, 4)
		assert.Equal(t, []any{"deadline", "none", "deadline_remaining", "none"}, attrs)
	})

	t.Run("context with deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(5*time.Minute))
		defer cancel()

		attrs := GetDeadlineInfo(ctx)

		require.Len(t, attrs, 4)
		assert.Contains(t, attrs[1].(string), "T")
		assert.NotEqual(t, "none", attrs[3])
	})
}

func TestRegisterContextExtractor(t *testing.T) {
	original := contextExtractors
	defer func() { contextExtractors = original }()

	ClearContextExtractors()
	e1 := &mockContextExtractor{requestID: "ext1", shouldFind: true}
	e2 := &mockContextExtractor{requestID: "ext2", shouldFind: true}
	RegisterContextExtractor(e1)
	RegisterContextExtractor(e2)

	require.Len(t, contextExtractors, 2)
	assert.Equal(t, e1, contextExtractors[0])
	assert.Equal(t, e2, contextExtractors[1])

	ClearContextExtractors()
	assert.Empty(t, contextExtractors)
}
