// Package main implements the AWS Lambda Function URL entry point for slackbridge.
// It serves the Slack Events API over HTTP, plus the feedback route when PARAM_ROOT is set.
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
	"github.com/slackbridge/slackbridge/internal/server"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg := config.MustLoadInbound()
	log := logger.Initialize(constants.Production, cfg.GetLogLevel())
	ctx, cancel := context.WithTimeout(context.Background(), cfg.InitTimeout)
	defer cancel()

	store, err := awsapp.Initialize(ctx, cfg, log)
	if err != nil {
		cancel()
		log.Error("failed to initialize parameter store", "error", err)
		os.Exit(1)
	}

	httpClient := app.NewHTTPClient(cfg)
	inbound := app.NewInbound(cfg, store, httpClient, log)

	var fb server.FeedbackHandler
	if cfg.ParamRoot != "" {
		fb = app.NewNotifier(ctx, cfg, store, httpClient, log)
	}

	log.Debug("starting Lambda handler", "service", constants.InboundService)
	lambda.StartHandler(lambdaapi.NewHTTPHandler(inbound, fb, log, 0))
}
