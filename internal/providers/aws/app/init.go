package aws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slackbridge/slackbridge/internal/config"
	"github.com/slackbridge/slackbridge/internal/logger"
	awsparams "github.com/slackbridge/slackbridge/internal/providers/aws/params"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Initialize loads the AWS SDK configuration and returns the Parameter Store gateway.
// It also registers the Lambda request id extractor with the logger.
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*awsparams.Gateway, error) {
	if err := cfg.AWS.LoadSDKConfig(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize AWS dependencies: %w", err)
	}

	ssmClient := ssm.NewFromConfig(*cfg.AWS.SDKConfig, func(o *ssm.Options) {
		if cfg.AWS.SSMEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.SSMEndpoint)
		}
	})

	logger.RegisterContextExtractor(NewLambdaContextExtractor())

	log.Debug("parameter store configured", "context", map[string]string{
		"region":       cfg.AWS.SDKConfig.Region,
		"ssm_endpoint": cfg.AWS.SSMEndpoint,
		"encrypted":    fmt.Sprint(cfg.KMSKeyID != ""),
	})

	return awsparams.NewGateway(awsparams.NewClientAdapter(ssmClient), cfg.KMSKeyID, cfg.ResourceTags(), log), nil
}
