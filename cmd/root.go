// Package cmd assembles the mock-provider command tree. The binary is a
// developer harness that drives the provider exactly the way the host
// runtime would: inspect its manifest, validate payloads against its
// schemas, and run the full delivery lifecycle.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relaykit/mock-provider/cmd/inspect"
	"github.com/relaykit/mock-provider/cmd/send"
	"github.com/relaykit/mock-provider/cmd/validate"
	"github.com/relaykit/mock-provider/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mock-provider",
		Short: "Mock notification provider harness",
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		inspect.Command(settings),
		validate.Command(settings),
		send.Command(settings),
	)

	return rootCmd
}

// setupFlags defines the global flags for the root command.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")
}
