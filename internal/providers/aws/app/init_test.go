package aws

import (
	"context"
	"testing"

	"github.com/slackbridge/slackbridge/internal/config"
	awsconfig "github.com/slackbridge/slackbridge/internal/config/aws"
	"github.com/slackbridge/slackbridge/internal/logger"
	"github.com/slackbridge/slackbridge/internal/testutil"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")
	t.Cleanup(logger.ClearContextExtractors)

	cfg := &config.Config{
		BotVersion: "1.0.0",
		KMSKeyID:   "alias/slackbridge",
		AWS: &awsconfig.Config{
			Region:      "us-east-1",
			SSMEndpoint: "http://localhost:4566",
		},
	}

	gateway, err := Initialize(context.Background(), cfg, testutil.SilentLogger())

	require.NoError(t, err)
	assert.NotNil(t, gateway)
	require.NotNil(t, cfg.AWS.SDKConfig)
	assert.Equal(t, "us-east-1", cfg.AWS.SDKConfig.Region)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-9"})
	log, buf := testutil.BufferLogger()
	logger.DeriveRequestLogger(ctx, log).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}
