package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/slackbridge/slackbridge/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loaders read so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"BOT_TOKEN",
		"BOT_VERSION",
		"PARAM_ROOT",
		"SLACKBRIDGE_SECRET_ROOT",
		"SLACKBRIDGE_SLACK_API_URL",
		"SLACKBRIDGE_KMS_KEY_ID",
		"SLACKBRIDGE_HTTP_TIMEOUT",
		"SLACKBRIDGE_INIT_TIMEOUT",
		"SLACKBRIDGE_LOG_LEVEL",
		"SLACKBRIDGE_DEV_SERVER_PORT",
		"SLACKBRIDGE_LOCAL_STORE",
		"SLACKBRIDGE_AWS_REGION",
		"SLACKBRIDGE_AWS_SSM_ENDPOINT",
	} {
		t.Setenv(name, "")
	}
}

func TestConfig_GetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{
			name:     "DEBUG level",
			logLevel: "DEBUG",
			expected: slog.LevelDebug,
		},
		{
			name:     "WARN level",
			logLevel: "WARN",
			expected: slog.LevelWarn,
		},
		{
			name:     "invalid level defaults to INFO",
			logLevel: "INVALID",
			expected: slog.LevelInfo,
		},
		{
			name:     "empty string defaults to INFO",
			logLevel: "",
			expected: slog.LevelInfo,
		},
		{
			name:     "lowercase level",
			logLevel: "debug",
			expected: slog.LevelDebug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetLogLevel())
		})
	}
}

func TestLoadInbound(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BOT_TOKEN", "xoxb-1")
		t.Setenv("BOT_VERSION", "1.0.0")

		cfg, err := LoadInbound()

		require.NoError(t, err)
		assert.Equal(t, "xoxb-1", cfg.BotToken)
		assert.Equal(t, "1.0.0", cfg.BotVersion)
		assert.Equal(t, "/slack_bot", cfg.SecretRoot)
		assert.Equal(t, "https://slack.com/api/", cfg.SlackAPIURL)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 10*time.Second, cfg.InitTimeout)
		assert.Equal(t, slog.LevelInfo, cfg.GetLogLevel())
		assert.Equal(t, "56212", cfg.Port)
		require.NotNil(t, cfg.AWS)
	})

	t.Run("reads overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BOT_TOKEN", "xoxb-1")
		t.Setenv("BOT_VERSION", "1.0.0")
		t.Setenv("SLACKBRIDGE_SECRET_ROOT", "/bots")
		t.Setenv("SLACKBRIDGE_SLACK_API_URL", "http://localhost:9999/api/")
		t.Setenv("SLACKBRIDGE_HTTP_TIMEOUT", "3s")
		t.Setenv("SLACKBRIDGE_KMS_KEY_ID", "alias/slackbridge")
		t.Setenv("SLACKBRIDGE_LOG_LEVEL", "DEBUG")
		t.Setenv("SLACKBRIDGE_AWS_REGION", "eu-central-1")

		cfg, err := LoadInbound()

		require.NoError(t, err)
		assert.Equal(t, "/bots", cfg.SecretRoot)
		assert.Equal(t, "http://localhost:9999/api/", cfg.SlackAPIURL)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "alias/slackbridge", cfg.KMSKeyID)
		assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel())
		assert.Equal(t, "eu-central-1", cfg.AWS.Region)
	})

	t.Run("requires bot token", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BOT_VERSION", "1.0.0")

		_, err := LoadInbound()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("requires bot version", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BOT_TOKEN", "xoxb-1")

		_, err := LoadInbound()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "BOT_VERSION")
	})

	t.Run("rejects invalid slack api url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BOT_TOKEN", "xoxb-1")
		t.Setenv("BOT_VERSION", "1.0.0")
		t.Setenv("SLACKBRIDGE_SLACK_API_URL", "not-a-url")

		_, err := LoadInbound()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})
}

func TestLoadNotifier(t *testing.T) {
	t.Run("param root is optional", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadNotifier()

		require.NoError(t, err)
		assert.Empty(t, cfg.ParamRoot)
	})

	t.Run("reads param root", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PARAM_ROOT", " /app/feedback ")

		cfg, err := LoadNotifier()

		require.NoError(t, err)
		assert.Equal(t, "/app/feedback", cfg.ParamRoot)
	})
}

func TestLoadLocal(t *testing.T) {
	t.Run("memory store fills placeholders", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SLACKBRIDGE_LOCAL_STORE", "Memory")
		t.Setenv("SLACKBRIDGE_DEV_SERVER_PORT", "8080")

		cfg, err := LoadLocal()

		require.NoError(t, err)
		assert.Equal(t, constants.LocalStoreMemory, cfg.LocalStore)
		assert.Equal(t, constants.LocalBotToken, cfg.BotToken)
		assert.NotEmpty(t, cfg.BotVersion)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("ssm store requires bot token", func(t *testing.T) {
		clearEnv(t)

		_, err := LoadLocal()

		require.Error(t, err)
	})

	t.Run("rejects unknown store", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SLACKBRIDGE_LOCAL_STORE", "redis")
		t.Setenv("BOT_TOKEN", "xoxb-1")
		t.Setenv("BOT_VERSION", "1.0.0")

		_, err := LoadLocal()

		require.Error(t, err)
	})
}

func TestResourceTags(t *testing.T) {
	cfg := &Config{BotVersion: "2.1.0"}

	assert.Equal(t, map[string]string{
		"Application": "slackbridge",
		"BotVersion":  "2.1.0",
	}, cfg.ResourceTags())
}
