// Package main implements the direct-invocation AWS Lambda for inbound Slack events.
// It answers url_verification challenges and replies to authenticated messages.
package main

import (
	"context"
	"os"

	"github.com/slackbridge/slackbridge/internal/app"
	"github.com/slackbridge/slackbridge/internal/config"
	"github.com/slackbridge/slackbridge/internal/constants"
	"github.com/slackbridge/slackbridge/internal/logger"
	awsapp "github.com/slackbridge/slackbridge/internal/providers/aws/app"
	"github.com/slackbridge/slackbridge/internal/providers/aws/lambdaapi"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg := config.MustLoadInbound()
	log := logger.Initialize(constants.Production, cfg.GetLogLevel())
	ctx, cancel := context.WithTimeout(context.Background(), cfg.InitTimeout)

	store, err := awsapp.Initialize(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Error("failed to initialize parameter store", "error", err)
		os.Exit(1)
	}

	handler := app.NewInbound(cfg, store, app.NewHTTPClient(cfg), log)

	log.Debug("starting Lambda handler", "service", constants.InboundService)
	lambda.StartHandler(lambdaapi.NewInboundHandler(handler, log))
}
