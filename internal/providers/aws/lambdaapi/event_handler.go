package lambdaapi

import (
	"context"
	"log/slog"

	"github.com/slackbridge/slackbridge/internal/bot"
	"github.com/slackbridge/slackbridge/internal/feedback"
	"github.com/slackbridge/slackbridge/internal/logger"
	awsapp "github.com/slackbridge/slackbridge/internal/providers/aws/app"
	"github.com/slackbridge/slackbridge/internal/server"

	"github.com/aws/aws-lambda-go/lambda"
)

// NewInboundHandler creates a direct-invocation Lambda handler for Slack events.
// The handler's return value is the Lambda result: the challenge, "200 OK" or a failure string.
func NewInboundHandler(inbound server.InboundHandler, log *slog.Logger) lambda.Handler {
	return lambda.NewHandler(func(ctx context.Context, event *bot.Event) (string, error) {
		logInvocation(ctx, log)
		return inbound.Handle(ctx, event)
	})
}

// NewFeedbackHandler creates an SNS-triggered Lambda handler for feedback records.
func NewFeedbackHandler(fb server.FeedbackHandler, log *slog.Logger) lambda.Handler {
	return lambda.NewHandler(func(ctx context.Context, event *feedback.Event) (*string, error) {
		logInvocation(ctx, log)
		return fb.Handle(ctx, event)
	})
}

func logInvocation(ctx context.Context, log *slog.Logger) {
	reqLogger := logger.DeriveRequestLogger(ctx, log)

	arn, ok := awsapp.InvokedFunctionARN(ctx)
	if !ok {
		reqLogger.Warn("lambda context is missing")
		return
	}

	args := append([]any{"function_arn", arn}, logger.GetDeadlineInfo(ctx)...)
	reqLogger.Debug("invocation started", args...)
}
