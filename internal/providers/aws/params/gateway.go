// Package params provides the AWS Systems Manager Parameter Store implementation
// of the params.Store abstraction.
package params

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/slackbridge/slackbridge/internal/constants"
	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/logger"
	"github.com/slackbridge/slackbridge/internal/params"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
)

const (
	nameFilterKey       = "Name"
	beginsWithFilterOpt = "BeginsWith"
	describePageSize    = 50
	unknownAWSErrorCode = "unknown"
)

// Gateway implements params.Store on top of AWS Systems Manager Parameter Store.
// Values are stored as String parameters, or as SecureString when a KMS key is configured.
type Gateway struct {
	client   Client
	kmsKeyID string
	tags     map[string]string
	logger   *slog.Logger
}

var _ params.Store = (*Gateway)(nil)

// NewGateway creates a new Parameter Store gateway.
// tags are applied to every parameter written; kmsKeyID may be empty.
func NewGateway(client Client, kmsKeyID string, tags map[string]string, log *slog.Logger) *Gateway {
	return &Gateway{
		client:   client,
		kmsKeyID: kmsKeyID,
		tags:     tags,
		logger:   log,
	}
}

// GetParamMap lists every parameter below prefix and fetches the values in
// batches of constants.MaxGetParametersBatch.
func (g *Gateway) GetParamMap(ctx context.Context, prefix string) (map[string]string, error) {
	reqLogger := logger.DeriveRequestLogger(ctx, g.logger)

	names, err := g.describeNames(ctx, prefix)
	if err != nil {
		reqLogger.Error("failed to describe parameters", "error", err, "context", map[string]string{
			"prefix":         prefix,
			"aws_error_code": awsErrorCode(err),
		})
		return nil, apperrors.ErrStoreReadFailed("failed to describe parameters under "+prefix, err)
	}

	result := make(map[string]string, len(names))
	if len(names) == 0 {
		reqLogger.Debug("no parameters under prefix", "prefix", prefix)
		return result, nil
	}

	for start := 0; start < len(names); start += constants.MaxGetParametersBatch {
		end := min(start+constants.MaxGetParametersBatch, len(names))

		out, getErr := g.client.GetParameters(ctx, &ssm.GetParametersInput{
			Names:          names[start:end],
			WithDecryption: aws.Bool(true),
		})
		if getErr != nil {
			reqLogger.Error("failed to get parameters", "error", getErr, "context", map[string]string{
				"prefix":         prefix,
				"aws_error_code": awsErrorCode(getErr),
			})
			return nil, apperrors.ErrStoreReadFailed("failed to get parameters under "+prefix, getErr)
		}

		if len(out.InvalidParameters) > 0 {
			reqLogger.Warn("parameters disappeared between describe and get", "names", out.InvalidParameters)
		}

		for _, p := range out.Parameters {
			if p.Name == nil || p.Value == nil {
				continue
			}
			if rel, ok := params.RelativeName(prefix, *p.Name); ok {
				result[rel] = *p.Value
			}
		}
	}

	reqLogger.Debug("parameters loaded", "prefix", prefix, "count", len(result))
	return result, nil
}

// describeNames pages through DescribeParameters for names beginning with prefix/.
func (g *Gateway) describeNames(ctx context.Context, prefix string) ([]string, error) {
	paginator := ssm.NewDescribeParametersPaginator(g.client, &ssm.DescribeParametersInput{
		ParameterFilters: []types.ParameterStringFilter{
			{
				Key:    aws.String(nameFilterKey),
				Option: aws.String(beginsWithFilterOpt),
				Values: []string{params.ListPrefix(prefix)},
			},
		},
		MaxResults: aws.Int32(describePageSize),
	})

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, meta := range page.Parameters {
			if meta.Name != nil && *meta.Name != "" {
				names = append(names, *meta.Name)
			}
		}
	}

	return names, nil
}

// PutParamMap writes each entry as prefix/key with overwrite enabled.
// The first failing write aborts the batch; earlier writes are not rolled back.
func (g *Gateway) PutParamMap(ctx context.Context, prefix string, values map[string]string) error {
	reqLogger := logger.DeriveRequestLogger(ctx, g.logger)

	paramType := types.ParameterTypeString
	var keyID *string
	if g.kmsKeyID != "" {
		paramType = types.ParameterTypeSecureString
		keyID = aws.String(g.kmsKeyID)
	}

	written := 0
	for _, key := range params.SortedKeys(values) {
		name := params.JoinName(prefix, key)

		_, err := g.client.PutParameter(ctx, &ssm.PutParameterInput{
			Name:      aws.String(name),
			Value:     aws.String(values[key]),
			Type:      paramType,
			KeyId:     keyID,
			Overwrite: aws.Bool(true),
		})
		if err != nil {
			// values are never logged, they are usually secrets
			reqLogger.Error("failed to write parameter", "error", err, "context", map[string]any{
				"name":           name,
				"written":        written,
				"total":          len(values),
				"aws_error_code": awsErrorCode(err),
			})
			return apperrors.ErrStoreWriteFailed(
				fmt.Sprintf("failed to write parameter %s after %d of %d entries", name, written, len(values)),
				err,
			)
		}
		written++

		g.tagParameter(ctx, name, reqLogger)
	}

	reqLogger.Debug("parameters written", "prefix", prefix, "count", written)
	return nil
}

func (g *Gateway) tagParameter(ctx context.Context, name string, reqLogger *slog.Logger) {
	tags := g.parameterTags()
	if len(tags) == 0 {
		return
	}

	_, err := g.client.AddTagsToResource(ctx, &ssm.AddTagsToResourceInput{
		ResourceType: types.ResourceTypeForTaggingParameter,
		ResourceId:   aws.String(name),
		Tags:         tags,
	})
	if err != nil {
		reqLogger.Warn("failed to tag parameter", "error", err, "name", name)
		// no need to return an error here, as the parameter is still stored
	}
}

func (g *Gateway) parameterTags() []types.Tag {
	keys := make([]string, 0, len(g.tags))
	for k, v := range g.tags {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	tags := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, types.Tag{Key: aws.String(k), Value: aws.String(g.tags[k])})
	}
	return tags
}

// awsErrorCode extracts the service error code (e.g. "ThrottlingException") for logging.
func awsErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return unknownAWSErrorCode
}
