package server

import (
	"net/http"

	"github.com/slackbridge/slackbridge/internal/api"
	"github.com/slackbridge/slackbridge/internal/bot"
	"github.com/slackbridge/slackbridge/internal/constants"
	"github.com/slackbridge/slackbridge/internal/feedback"
)

// handleHealth returns a simple health check response.
func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{
		Status:  "ok",
		Version: *constants.GetVersion(),
	})
}

// handleSlackEvent runs the inbound handler. Challenges are answered as JSON,
// every other outcome as plain text.
func (r *Router) handleSlackEvent(w http.ResponseWriter, req *http.Request) {
	logger := r.requestLogger(req.Context())

	var event bot.Event
	if err := decodeRequestBody(w, req, &event); err != nil {
		logger.Warn("rejecting slack event", "error", err)
		return
	}

	result, err := r.inbound.Handle(req.Context(), &event)
	if err != nil {
		logger.Error("failed to handle slack event", "error", err)
		writeAppError(w, "failed to handle slack event", err)
		return
	}

	if event.IsChallenge() {
		writeJSON(w, http.StatusOK, api.ChallengeResponse{Challenge: result})
		return
	}

	writeText(w, http.StatusOK, result)
}

// handleFeedback runs the notifier against an SNS batch posted directly.
func (r *Router) handleFeedback(w http.ResponseWriter, req *http.Request) {
	logger := r.requestLogger(req.Context())

	var event feedback.Event
	if err := decodeRequestBody(w, req, &event); err != nil {
		logger.Warn("rejecting feedback batch", "error", err)
		return
	}

	result, err := r.feedback.Handle(req.Context(), &event)
	if err != nil {
		writeAppError(w, "failed to handle feedback batch", err)
		return
	}

	writeJSON(w, http.StatusOK, api.FeedbackResponse{
		Records: len(event.Records),
		Result:  result,
	})
}
