// Package server exposes the Slack Events API and feedback handlers over HTTP
// with a chi router.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/slackbridge/slackbridge/internal/bot"
	"github.com/slackbridge/slackbridge/internal/feedback"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InboundHandler handles a decoded Slack Events API callback.
type InboundHandler interface {
	Handle(ctx context.Context, event *bot.Event) (string, error)
}

// FeedbackHandler handles a decoded SNS feedback batch.
type FeedbackHandler interface {
	Handle(ctx context.Context, event *feedback.Event) (*string, error)
}

// Router wraps the chi router and the handlers it dispatches to.
type Router struct {
	router   *chi.Mux
	inbound  InboundHandler
	feedback FeedbackHandler
	logger   *slog.Logger
}

// NewRouter creates a new chi router with routes configured.
// fb may be nil, in which case the feedback route is not mounted.
// A zero requestTimeout leaves timeouts to the runtime.
func NewRouter(inbound InboundHandler, fb FeedbackHandler, log *slog.Logger, requestTimeout time.Duration) *Router {
	r := chi.NewRouter()
	router := &Router{
		router:   r,
		inbound:  inbound,
		feedback: fb,
		logger:   log,
	}

	r.Use(router.requestIDMiddleware)
	r.Use(router.requestLoggingMiddleware)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(router.requestTimeoutMiddleware(requestTimeout))
	}

	r.Get("/health", router.handleHealth)
	r.Post("/slack/events", router.handleSlackEvent)
	if fb != nil {
		r.Post("/sns/feedback", router.handleFeedback)
	}

	return router
}

// ServeHTTP implements http.Handler for use with chi router
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Handler returns an http.Handler for the router
func (r *Router) Handler() http.Handler {
	return r.router
}
