package cmd

import (
	"github.com/slackbridge/slackbridge/internal/constants"
	"github.com/slackbridge/slackbridge/internal/output"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the CLI",
	Run: func(cmd *cobra.Command, _ []string) {
		output.KeyValue("CLI version", *constants.GetVersion())

		cfg, err := getConfigFromContext(cmd)
		if err != nil {
			output.Warning("configuration unavailable: %v", err)
			return
		}

		output.KeyValue("Secret root", cfg.SecretRoot)
		output.KeyValue("Slack API URL", cfg.SlackAPIURL)
		if cfg.AWS != nil && cfg.AWS.Region != "" {
			output.KeyValue("AWS region", cfg.AWS.Region)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
