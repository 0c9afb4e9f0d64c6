// Package main implements the slackbridge CLI tool.
// It inspects and seeds bot parameters and replays handler events locally.
package main

import "github.com/slackbridge/slackbridge/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
