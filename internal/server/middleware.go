package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/slackbridge/slackbridge/internal/constants"
	loggerPkg "github.com/slackbridge/slackbridge/internal/logger"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// generateRequestID generates a random request ID using crypto/rand
func generateRequestID() string {
	b := make([]byte, constants.RequestIDByteSize)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(b)
}

// requestIDMiddleware extracts the request ID from the context (if present) or generates a random one.
// Priority: 1) Existing request ID in context, 2) Lambda request ID, 3) Generated random ID.
func (r *Router) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := loggerPkg.GetRequestID(req.Context())

		if requestID == "" {
			if lc, ok := lambdacontext.FromContext(req.Context()); ok && lc.AwsRequestID != "" {
				requestID = lc.AwsRequestID
			}
		}

		if requestID == "" {
			requestID = generateRequestID()
		}

		w.Header().Set("X-Request-Id", requestID)
		ctx := loggerPkg.WithRequestID(req.Context(), requestID)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// requestTimeoutMiddleware creates a context with timeout for each request.
func (r *Router) requestTimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx, cancel := context.WithTimeout(req.Context(), timeout)
			defer cancel()

			req = req.WithContext(ctx)
			next.ServeHTTP(w, req)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				r.requestLogger(req.Context()).Warn("request timeout exceeded", "request", map[string]any{
					"method":  req.Method,
					"path":    req.URL.Path,
					"timeout": timeout.String(),
				})
			}
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLoggingMiddleware logs incoming requests and their responses
func (r *Router) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logger := r.requestLogger(req.Context())
		start := time.Now()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		logger.Info("processing incoming request", "request", map[string]string{
			"method":     req.Method,
			"path":       req.URL.Path,
			"remoteAddr": req.RemoteAddr,
		})

		next.ServeHTTP(wrapped, req)

		logger.Info("response sent", "response", map[string]any{
			"status":   wrapped.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}

func (r *Router) requestLogger(ctx context.Context) *slog.Logger {
	return loggerPkg.DeriveRequestLogger(ctx, r.logger)
}
