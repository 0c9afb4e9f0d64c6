package constants

// DefaultSecretRoot is the prefix under which per-bot secrets are stored.
// The full prefix is {SecretRoot}/{BotToken}.
const DefaultSecretRoot = "/slack_bot"

// VerificationTokenKey is the suffix, relative to the bot prefix, of the stored verification token.
//
//nolint:gosec // G101: this is a parameter name, not a credential
const VerificationTokenKey = "verification_token"

// Keys read from the feedback parameter prefix.
const (
	FeedbackChannelKey = "channel"
	FeedbackNameKey    = "slack_name"
	FeedbackEmojiKey   = "slack_emoji"
	FeedbackURLKey     = "slack_url"
)

// ParameterPathSeparator separates the segments of a parameter name.
const ParameterPathSeparator = "/"

// MaxGetParametersBatch is the largest number of names SSM GetParameters accepts per call.
const MaxGetParametersBatch = 10

// Tag keys applied to every written parameter.
const (
	ApplicationTagKey = "Application"
	BotVersionTagKey  = "BotVersion"
)
