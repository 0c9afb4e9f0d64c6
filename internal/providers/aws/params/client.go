package params

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Client defines the interface for SSM operations used by the Gateway.
// This interface makes the code easier to test by allowing mock implementations.
// It also satisfies ssm.DescribeParametersAPIClient so the SDK paginator can drive it.
type Client interface {
	DescribeParameters(
		ctx context.Context,
		params *ssm.DescribeParametersInput,
		optFns ...func(*ssm.Options),
	) (*ssm.DescribeParametersOutput, error)
	GetParameters(
		ctx context.Context,
		params *ssm.GetParametersInput,
		optFns ...func(*ssm.Options),
	) (*ssm.GetParametersOutput, error)
	PutParameter(
		ctx context.Context,
		params *ssm.PutParameterInput,
		optFns ...func(*ssm.Options),
	) (*ssm.PutParameterOutput, error)
	AddTagsToResource(
		ctx context.Context,
		params *ssm.AddTagsToResourceInput,
		optFns ...func(*ssm.Options),
	) (*ssm.AddTagsToResourceOutput, error)
}

// ClientAdapter wraps the AWS SDK SSM client to implement Client interface.
type ClientAdapter struct {
	client *ssm.Client
}

// NewClientAdapter creates a new adapter wrapping the AWS SDK SSM client.
func NewClientAdapter(client *ssm.Client) *ClientAdapter {
	return &ClientAdapter{client: client}
}

// DescribeParameters wraps the AWS SDK DescribeParameters operation.
func (a *ClientAdapter) DescribeParameters(
	ctx context.Context,
	params *ssm.DescribeParametersInput,
	optFns ...func(*ssm.Options),
) (*ssm.DescribeParametersOutput, error) {
	result, err := a.client.DescribeParameters(ctx, params, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to describe parameters: %w", err)
	}
	return result, nil
}

// GetParameters wraps the AWS SDK GetParameters operation.
func (a *ClientAdapter) GetParameters(
	ctx context.Context,
	params *ssm.GetParametersInput,
	optFns ...func(*ssm.Options),
) (*ssm.GetParametersOutput, error) {
	result, err := a.client.GetParameters(ctx, params, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to get parameters: %w", err)
	}
	return result, nil
}

// PutParameter wraps the AWS SDK PutParameter operation.
func (a *ClientAdapter) PutParameter(
	ctx context.Context,
	params *ssm.PutParameterInput,
	optFns ...func(*ssm.Options),
) (*ssm.PutParameterOutput, error) {
	result, err := a.client.PutParameter(ctx, params, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to put parameter: %w", err)
	}
	return result, nil
}

// AddTagsToResource wraps the AWS SDK AddTagsToResource operation.
func (a *ClientAdapter) AddTagsToResource(
	ctx context.Context,
	params *ssm.AddTagsToResourceInput,
	optFns ...func(*ssm.Options),
) (*ssm.AddTagsToResourceOutput, error) {
	result, err := a.client.AddTagsToResource(ctx, params, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to add tags to resource: %w", err)
	}
	return result, nil
}
