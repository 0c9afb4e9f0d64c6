// Package aws contains AWS-specific configuration helpers for slackbridge services.
package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/viper"
)

// Config contains AWS-specific configuration.
type Config struct {
	// Region overrides the region resolved from the default credential chain.
	Region string `mapstructure:"region"`

	// SSMEndpoint overrides the Systems Manager endpoint (e.g. LocalStack).
	SSMEndpoint string `mapstructure:"ssm_endpoint" validate:"omitempty,url"`

	// AWS SDK Configuration (credentials, region, etc.)
	SDKConfig *aws.Config `mapstructure:"-"`
}

// BindEnvVars binds AWS-specific environment variables to the provided Viper instance.
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("aws.region", "SLACKBRIDGE_AWS_REGION", "AWS_REGION")
	_ = v.BindEnv("aws.ssm_endpoint", "SLACKBRIDGE_AWS_SSM_ENDPOINT")
}

// LoadSDKConfig loads the AWS SDK configuration from the environment.
func (c *Config) LoadSDKConfig(ctx context.Context) error {
	var opts []func(*awsConfig.LoadOptions) error
	if region := strings.TrimSpace(c.Region); region != "" {
		opts = append(opts, awsConfig.WithRegion(region))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK configuration: %w", err)
	}
	c.SDKConfig = &awsCfg
	return nil
}
