package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/slackbridge/slackbridge/internal/app"
	"github.com/slackbridge/slackbridge/internal/bot"
	"github.com/slackbridge/slackbridge/internal/config"
	"github.com/slackbridge/slackbridge/internal/constants"
	apperrors "github.com/slackbridge/slackbridge/internal/errors"
	"github.com/slackbridge/slackbridge/internal/feedback"
	"github.com/slackbridge/slackbridge/internal/params"
	"github.com/slackbridge/slackbridge/internal/server"

	"github.com/spf13/cobra"
)

var invokeEventFiles []string

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Replay events through a handler in-process",
	Long: `Replay JSON event files through a handler in-process, in the order given.
Every event of one invocation shares the same parameter store`,
}

var invokeInboundCmd = &cobra.Command{
	Use:   "inbound",
	Short: "Replay Slack Events API payloads through the inbound handler",
	Example: fmt.Sprintf(
		"  - %s invoke inbound --event challenge.json --event message.json",
		constants.ProjectName,
	),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		events, err := readEventFiles(invokeEventFiles)
		if err != nil {
			return err
		}
		return executeWithStore(cmd, func(ctx context.Context, cfg *config.Config, store params.Store) error {
			if cfg.BotToken == "" {
				return fmt.Errorf("BOT_TOKEN must be set to invoke the inbound handler")
			}
			h := app.NewInbound(cfg, store, app.NewHTTPClient(cfg), cliLogger)
			service := NewInvokeService(NewOutputWrapper())
			return service.InvokeInbound(ctx, h, events)
		})
	},
}

var invokeFeedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Replay SNS batches through the feedback notifier",
	Example: fmt.Sprintf(
		"  - PARAM_ROOT=/feedback %s invoke feedback --event sns.json",
		constants.ProjectName,
	),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		events, err := readEventFiles(invokeEventFiles)
		if err != nil {
			return err
		}
		return executeWithStore(cmd, func(ctx context.Context, cfg *config.Config, store params.Store) error {
			notifier := app.NewNotifier(ctx, cfg, store, app.NewHTTPClient(cfg), cliLogger)
			service := NewInvokeService(NewOutputWrapper())
			return service.InvokeFeedback(ctx, notifier, events)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{invokeInboundCmd, invokeFeedbackCmd} {
		c.Flags().StringArrayVar(&invokeEventFiles, "event", nil, "JSON event file (repeatable)")
		_ = c.MarkFlagRequired("event")
	}
	invokeCmd.AddCommand(invokeInboundCmd, invokeFeedbackCmd)
	rootCmd.AddCommand(invokeCmd)
}

// InvokeService replays decoded events through the handlers
type InvokeService struct {
	output OutputInterface
}

// NewInvokeService creates a new InvokeService with the provided dependencies
func NewInvokeService(output OutputInterface) *InvokeService {
	return &InvokeService{output: output}
}

// InvokeInbound runs each payload through the inbound handler and prints its response.
// The first handler error stops the replay.
func (s *InvokeService) InvokeInbound(ctx context.Context, h server.InboundHandler, payloads [][]byte) error {
	for i, data := range payloads {
		var event bot.Event
		if err := json.Unmarshal(data, &event); err != nil {
			return apperrors.ErrInvalidEvent(fmt.Sprintf("event %d is not a valid Slack payload", i+1), err)
		}

		s.output.Info("Invoking inbound handler with event %d of %d", i+1, len(payloads))
		resp, err := h.Handle(ctx, &event)
		if err != nil {
			return fmt.Errorf("inbound handler failed on event %d: %w", i+1, err)
		}
		s.output.KeyValue("Response", resp)
	}

	s.output.Success("%d event(s) handled", len(payloads))
	return nil
}

// InvokeFeedback runs each SNS batch through the feedback notifier and prints its result.
func (s *InvokeService) InvokeFeedback(ctx context.Context, fb server.FeedbackHandler, payloads [][]byte) error {
	for i, data := range payloads {
		var event feedback.Event
		if err := json.Unmarshal(data, &event); err != nil {
			return apperrors.ErrInvalidEvent(fmt.Sprintf("event %d is not a valid SNS batch", i+1), err)
		}

		s.output.Info("Invoking feedback notifier with %d record(s)", len(event.Records))
		result, err := fb.Handle(ctx, &event)
		if err != nil {
			return fmt.Errorf("feedback notifier failed on event %d: %w", i+1, err)
		}
		if result != nil {
			s.output.KeyValue("Result", *result)
		} else {
			s.output.KeyValue("Result", "null")
		}
	}

	s.output.Success("%d batch(es) handled", len(payloads))
	return nil
}

func readEventFiles(paths []string) ([][]byte, error) {
	payloads := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
		if err != nil {
			return nil, fmt.Errorf("failed to read event file %s: %w", path, err)
		}
		payloads = append(payloads, data)
	}
	return payloads, nil
}
