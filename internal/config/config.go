// Package config manages configuration for the slackbridge handlers, local server and CLI.
// It uses Viper for environment variable binding with explicit defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	awsconfig "github.com/slackbridge/slackbridge/internal/config/aws"
	"github.com/slackbridge/slackbridge/internal/constants"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the configuration shared by every slackbridge binary.
// Each loader validates only the fields its binary needs.
type Config struct {
	// Inbound handler
	BotToken    string `mapstructure:"bot_token"`
	BotVersion  string `mapstructure:"bot_version"`
	SecretRoot  string `mapstructure:"secret_root" validate:"required"`
	SlackAPIURL string `mapstructure:"slack_api_url" validate:"required,url"`

	// Notification handler
	ParamRoot string `mapstructure:"param_root"`

	// Parameter store
	KMSKeyID string `mapstructure:"kms_key_id"`

	// Runtime
	HTTPTimeout time.Duration `mapstructure:"http_timeout" validate:"gte=0"`
	InitTimeout time.Duration `mapstructure:"init_timeout" validate:"gte=0"`
	LogLevel    string        `mapstructure:"log_level"`

	// Local development
	Port       string `mapstructure:"port" validate:"omitempty,numeric"`
	LocalStore string `mapstructure:"local_store" validate:"omitempty,oneof=memory ssm"`

	AWS *awsconfig.Config `mapstructure:"aws"`
}

var validate = validator.New()

// LoadInbound loads configuration for the inbound Slack event handler.
// BOT_TOKEN and BOT_VERSION are required.
func LoadInbound() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error loading inbound config: %w", err)
	}

	if err = validateInbound(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadNotifier loads configuration for the feedback notifier.
// PARAM_ROOT is optional; when absent the notifier runs without Slack details.
func LoadNotifier() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error loading notifier config: %w", err)
	}

	cfg.ParamRoot = strings.TrimSpace(cfg.ParamRoot)
	return cfg, nil
}

// LoadLocal loads configuration for the local development server.
// It has the inbound requirements unless the in-memory store is selected,
// in which case a placeholder bot token is accepted.
func LoadLocal() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error loading local config: %w", err)
	}

	if cfg.LocalStore == constants.LocalStoreMemory {
		if cfg.BotToken == "" {
			cfg.BotToken = constants.LocalBotToken
		}
		if cfg.BotVersion == "" {
			cfg.BotVersion = *constants.GetVersion()
		}
	}

	if err = validateInbound(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadCLI loads configuration for the developer CLI. Nothing is required.
func LoadCLI() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error loading CLI config: %w", err)
	}
	return cfg, nil
}

// MustLoadInbound loads inbound configuration and exits on error.
// Suitable for application startup where configuration errors should be fatal.
func MustLoadInbound() *Config {
	cfg, err := LoadInbound()
	if err != nil {
		slog.Error("failed to load inbound configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// MustLoadNotifier loads notifier configuration and exits on error.
// Suitable for application startup where configuration errors should be fatal.
func MustLoadNotifier() *Config {
	cfg, err := LoadNotifier()
	if err != nil {
		slog.Error("failed to load notifier configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// MustLoadLocal loads local server configuration and exits on error.
func MustLoadLocal() *Config {
	cfg, err := LoadLocal()
	if err != nil {
		slog.Error("failed to load local configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ResourceTags returns the tags applied to parameters written by this deployment.
func (c *Config) ResourceTags() map[string]string {
	return map[string]string{
		constants.ApplicationTagKey: constants.ProjectName,
		constants.BotVersionTagKey:  c.BotVersion,
	}
}

// Helper functions

func load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnvVars(v)
	awsconfig.BindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.AWS == nil {
		cfg.AWS = &awsconfig.Config{}
	}

	cfg.SecretRoot = strings.TrimSpace(cfg.SecretRoot)
	cfg.LocalStore = strings.ToLower(strings.TrimSpace(cfg.LocalStore))

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("secret_root", constants.DefaultSecretRoot)
	v.SetDefault("slack_api_url", constants.DefaultSlackAPIURL)
	v.SetDefault("http_timeout", constants.DefaultHTTPTimeout.String())
	v.SetDefault("init_timeout", constants.DefaultInitTimeout.String())
	v.SetDefault("log_level", "INFO")
	v.SetDefault("port", constants.DevServerPort)
}

func bindEnvVars(v *viper.Viper) {
	// Handler contract variables keep their historical unprefixed names
	_ = v.BindEnv("bot_token", "BOT_TOKEN")
	_ = v.BindEnv("bot_version", "BOT_VERSION")
	_ = v.BindEnv("param_root", "PARAM_ROOT")

	envVars := []string{
		"HTTP_TIMEOUT",
		"INIT_TIMEOUT",
		"KMS_KEY_ID",
		"LOCAL_STORE",
		"LOG_LEVEL",
		"SECRET_ROOT",
		"SLACK_API_URL",
	}

	for _, envVar := range envVars {
		configKey := strings.ToLower(envVar)
		_ = v.BindEnv(configKey, "SLACKBRIDGE_"+envVar)
	}

	_ = v.BindEnv("port", "SLACKBRIDGE_DEV_SERVER_PORT")
}

// validateInbound validates required fields for the inbound handler.
func validateInbound(cfg *Config) error {
	required := []struct {
		env   string
		value string
	}{
		{env: "BOT_TOKEN", value: cfg.BotToken},
		{env: "BOT_VERSION", value: cfg.BotVersion},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s cannot be empty", r.env)
		}
	}

	return nil
}
