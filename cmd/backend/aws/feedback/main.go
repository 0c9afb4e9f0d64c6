// Package main implements the SNS-triggered AWS Lambda that forwards feedback to Slack.
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
	cfg := config.MustLoadNotifier()
	log := logger.Initialize(constants.Production, cfg.GetLogLevel())
	ctx, cancel := context.WithTimeout(context.Background(), cfg.InitTimeout)

	store, err := awsapp.Initialize(ctx, cfg, log)
	if err != nil {
		cancel()
		log.Error("failed to initialize parameter store", "error", err)
		os.Exit(1)
	}

	notifier := app.NewNotifier(ctx, cfg, store, app.NewHTTPClient(cfg), log)
	cancel()

	log.Debug("starting Lambda handler", "service", constants.FeedbackService)
	lambda.StartHandler(lambdaapi.NewFeedbackHandler(notifier, log))
}
