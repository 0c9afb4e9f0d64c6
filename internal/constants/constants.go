// Package constants defines global constants used throughout slackbridge.
// It includes version information, environment names and configuration keys.
package constants

var version = "0.0.0-development" // Updated by CI/CD pipeline at build time

// GetVersion returns the current version of slackbridge.
func GetVersion() *string {
	return &version
}

// ProjectName is the name of the CLI tool and application
const ProjectName = "slackbridge"

// Environment represents the execution environment (e.g., CLI, Lambda).
type Environment string

// Environment types for logger configuration
const (
	Development Environment = "development"
	Production  Environment = "production"
	CLI         Environment = "cli"
)

// Service represents a slackbridge service component.
type Service string

const (
	// InboundService handles Slack Events API callbacks.
	InboundService Service = "inbound"
	// FeedbackService forwards SNS feedback records to Slack.
	FeedbackService Service = "feedback"
	// LocalService is the development HTTP server.
	LocalService Service = "local"
)

// EnvFileName is the dotenv file loaded by the CLI and the local server.
const EnvFileName = ".env"

// LocalStoreMemory selects the in-memory parameter store for local runs.
const LocalStoreMemory = "memory"

// LocalBotToken is the placeholder bot token used by the local server with the in-memory store.
const LocalBotToken = "xoxb-local"
