package cmd

import (
	"context"
	"fmt"

	"github.com/slackbridge/slackbridge/internal/config"
	"github.com/slackbridge/slackbridge/internal/constants"
	"github.com/slackbridge/slackbridge/internal/params"
	awsapp "github.com/slackbridge/slackbridge/internal/providers/aws/app"

	"github.com/spf13/cobra"
)

// newStore returns the parameter store selected by SLACKBRIDGE_LOCAL_STORE.
// The in-memory store lives only as long as the command.
func newStore(ctx context.Context, cfg *config.Config) (params.Store, error) {
	if cfg.LocalStore == constants.LocalStoreMemory {
		NewOutputWrapper().Warning("Using the in-memory store; nothing is persisted after this command")
		return params.NewMemoryStore(nil), nil
	}

	gateway, err := awsapp.Initialize(ctx, cfg, cliLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize parameter store: %w", err)
	}
	return gateway, nil
}

// executeWithStore loads the config and store for cmd and runs fn with them.
func executeWithStore(cmd *cobra.Command, fn func(context.Context, *config.Config, params.Store) error) error {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return err
	}

	store, err := newStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return fn(cmd.Context(), cfg, store)
}
