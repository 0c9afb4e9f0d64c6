// Package aws wires the AWS-backed implementations of the slackbridge handlers
// and extracts Lambda invocation metadata for logging.
package aws

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// LambdaContextExtractor extracts request IDs from AWS Lambda contexts.
// It is registered with the logger so every request logger carries the AWS request id.
type LambdaContextExtractor struct{}

// NewLambdaContextExtractor creates a new AWS Lambda context extractor.
func NewLambdaContextExtractor() *LambdaContextExtractor {
	return &LambdaContextExtractor{}
}

// ExtractRequestID extracts the AWS request ID from a Lambda context.
func (e *LambdaContextExtractor) ExtractRequestID(ctx context.Context) (string, bool) {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok || lc.AwsRequestID == "" {
		return "", false
	}
	return lc.AwsRequestID, true
}

// InvokedFunctionARN returns the ARN the current invocation was addressed to.
// The boolean is false outside a Lambda invocation.
func InvokedFunctionARN(ctx context.Context) (string, bool) {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return "", false
	}
	return lc.InvokedFunctionArn, true
}
