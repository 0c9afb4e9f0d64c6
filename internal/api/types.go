// Package api defines the HTTP response bodies served by slackbridge.
package api

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the response to a health check request
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// FeedbackResponse reports the outcome of a directly posted SNS batch.
// Result carries the notifier's descriptive message, or null on normal completion.
type FeedbackResponse struct {
	Records int     `json:"records"`
	Result  *string `json:"result"`
}

// ChallengeResponse answers a Slack url_verification handshake.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}
