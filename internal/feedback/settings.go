// Package feedback forwards SNS feedback notifications to a Slack incoming webhook.
package feedback

import (
	"context"
	"log/slog"

	"github.com/slackbridge/slackbridge/internal/constants"
	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/params"

	"github.com/go-playground/validator/v10"
)

// Settings holds the webhook destination loaded from the parameter store.
type Settings struct {
	Channel string `validate:"required"`
	Name    string `validate:"required"`
	Emoji   string `validate:"required"`
	URL     string `validate:"required,url"`
}

var validate = validator.New()

// LoadSettings reads channel, slack_name, slack_emoji and slack_url under paramRoot.
// Any failure is returned as a CONFIG_MISSING error; callers treat it as
// "settings unavailable" rather than a fatal condition.
func LoadSettings(ctx context.Context, store params.Store, paramRoot string, log *slog.Logger) (*Settings, error) {
	if paramRoot == "" {
		return nil, apperrors.ErrConfigMissing("PARAM_ROOT is not set", nil)
	}

	kp, err := store.GetParamMap(ctx, paramRoot)
	if err != nil {
		return nil, apperrors.ErrConfigMissing("failed to read feedback parameters", err)
	}

	s := &Settings{
		Channel: kp[constants.FeedbackChannelKey],
		Name:    kp[constants.FeedbackNameKey],
		Emoji:   kp[constants.FeedbackEmojiKey],
		URL:     kp[constants.FeedbackURLKey],
	}
	if err = validate.Struct(s); err != nil {
		return nil, apperrors.ErrConfigMissing("incomplete feedback parameters under "+paramRoot, err)
	}

	log.Debug("feedback settings loaded", "context", map[string]string{
		"param_root": paramRoot,
		"channel":    s.Channel,
		"username":   s.Name,
	})
	return s, nil
}
