// Package lambdaapi provides Lambda handler creation for AWS Lambda,
// adapting the provider-agnostic handlers to Lambda entry points.
package lambdaapi

import (
	"log/slog"
	"time"

	"github.com/slackbridge/slackbridge/internal/server"

	"github.com/akrylysov/algnhsa"
	"github.com/aws/aws-lambda-go/lambda"
)

// NewHTTPHandler creates a Lambda handler serving the HTTP router.
// It uses algnhsa to adapt the chi router to work with Lambda Function URLs and API Gateway.
func NewHTTPHandler(
	inbound server.InboundHandler,
	fb server.FeedbackHandler,
	log *slog.Logger,
	requestTimeout time.Duration,
) lambda.Handler {
	router := server.NewRouter(inbound, fb, log, requestTimeout)
	return algnhsa.New(router.Handler(), nil)
}
