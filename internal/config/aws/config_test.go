package aws

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindEnvVars(t *testing.T) {
	t.Setenv("SLACKBRIDGE_AWS_REGION", "eu-west-1")
	t.Setenv("SLACKBRIDGE_AWS_SSM_ENDPOINT", "http://localhost:4566")

	v := viper.New()
	BindEnvVars(v)

	assert.Equal(t, "eu-west-1", v.GetString("aws.region"))
	assert.Equal(t, "http://localhost:4566", v.GetString("aws.ssm_endpoint"))
}

func TestBindEnvVars_FallsBackToAWSRegion(t *testing.T) {
	t.Setenv("SLACKBRIDGE_AWS_REGION", "")
	t.Setenv("AWS_REGION", "us-east-2")

	v := viper.New()
	BindEnvVars(v)

	assert.Equal(t, "us-east-2", v.GetString("aws.region"))
}

func TestLoadSDKConfig(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	cfg := &Config{Region: " ap-south-1 "}
	err := cfg.LoadSDKConfig(context.Background())

	require.NoError(t, err)
	require.NotNil(t, cfg.SDKConfig)
	assert.Equal(t, "ap-south-1", cfg.SDKConfig.Region)
}
