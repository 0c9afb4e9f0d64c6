package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/slackbridge/slackbridge/internal/config"
	"github.com/slackbridge/slackbridge/internal/constants"
	"github.com/slackbridge/slackbridge/internal/params"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const putParamsMinArgs = 1

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Parameter store commands",
}

var getParamsReveal bool

var getParamsCmd = &cobra.Command{
	Use:   "get <prefix>",
	Short: "List the parameters under a prefix",
	Long:  `List every parameter under the prefix, keyed by its name relative to the prefix. Values are masked unless --reveal is set`,
	Example: fmt.Sprintf(
		"  - %s params get %s/xoxb-123\n"+
			"  - %s params get /feedback --reveal",
		constants.ProjectName, constants.DefaultSecretRoot,
		constants.ProjectName,
	),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := args[0]
		return executeWithStore(cmd, func(ctx context.Context, _ *config.Config, store params.Store) error {
			service := NewParamsService(store, NewOutputWrapper())
			return service.GetParams(ctx, prefix, getParamsReveal)
		})
	},
}

var putParamsFile string

var putParamsCmd = &cobra.Command{
	Use:   "put <prefix> [key=value...]",
	Short: "Write parameters under a prefix",
	Long: `Write parameters under the prefix from key=value arguments and/or a YAML file of string entries.
Arguments override entries of the same key from the file`,
	Example: fmt.Sprintf(
		"  - %s params put /feedback channel=#feedback name=feedback-bot\n"+
			"  - %s params put /feedback --file feedback.yaml",
		constants.ProjectName,
		constants.ProjectName,
	),
	Args: cobra.MinimumNArgs(putParamsMinArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := args[0]
		values, err := collectParams(putParamsFile, args[1:])
		if err != nil {
			return err
		}
		return executeWithStore(cmd, func(ctx context.Context, _ *config.Config, store params.Store) error {
			service := NewParamsService(store, NewOutputWrapper())
			return service.PutParams(ctx, prefix, values)
		})
	},
}

func init() {
	getParamsCmd.Flags().BoolVar(&getParamsReveal, "reveal", false, "Print parameter values unmasked")
	putParamsCmd.Flags().StringVar(&putParamsFile, "file", "", "YAML file of key: value entries")
	paramsCmd.AddCommand(getParamsCmd, putParamsCmd)
	rootCmd.AddCommand(paramsCmd)
}

// ParamsService handles parameter store operations for the CLI
type ParamsService struct {
	store  params.Store
	output OutputInterface
}

// NewParamsService creates a new ParamsService with the provided dependencies
func NewParamsService(store params.Store, output OutputInterface) *ParamsService {
	return &ParamsService{store: store, output: output}
}

// GetParams prints the parameters under prefix
func (s *ParamsService) GetParams(ctx context.Context, prefix string, reveal bool) error {
	s.output.Info("Reading parameters under %s...", s.output.Bold(params.NormalizePrefix(prefix)))

	values, err := s.store.GetParamMap(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to read parameters: %w", err)
	}

	if len(values) == 0 {
		s.output.Warning("No parameters found")
		return nil
	}

	s.output.ParamTable(values, reveal)
	s.output.Success("%d parameter(s) found", len(values))
	return nil
}

// PutParams writes values under prefix
func (s *ParamsService) PutParams(ctx context.Context, prefix string, values map[string]string) error {
	if len(values) == 0 {
		return fmt.Errorf("no parameters to write")
	}

	s.output.Info("Writing %d parameter(s) under %s...", len(values), s.output.Bold(params.NormalizePrefix(prefix)))

	if err := s.store.PutParamMap(ctx, prefix, values); err != nil {
		return fmt.Errorf("failed to write parameters: %w", err)
	}

	for _, key := range params.SortedKeys(values) {
		s.output.KeyValue("Written", params.JoinName(prefix, key))
	}
	s.output.Success("%d parameter(s) written", len(values))
	return nil
}

// collectParams merges the YAML file entries with key=value arguments.
func collectParams(path string, args []string) (map[string]string, error) {
	values := make(map[string]string)

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		fileValues, err := parseParamFile(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	argValues, err := parseKeyValues(args)
	if err != nil {
		return nil, err
	}
	for k, v := range argValues {
		values[k] = v
	}

	return values, nil
}

// parseParamFile decodes a flat YAML mapping of string entries.
func parseParamFile(data []byte) (map[string]string, error) {
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = map[string]string{}
	}

	for k := range values {
		if strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("empty parameter key")
		}
	}
	return values, nil
}

// parseKeyValues parses key=value arguments. The value may contain '='.
func parseKeyValues(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", arg)
		}
		values[key] = value
	}
	return values, nil
}
