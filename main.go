package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/relaykit/mock-provider/cmd"
	"github.com/relaykit/mock-provider/internal/conf"
	"github.com/relaykit/mock-provider/internal/logging"
	"github.com/relaykit/mock-provider/internal/notification"
)

func main() {
	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading settings: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	logging.Init(level)
	notification.SetDebugLevel(settings.Debug)
	defer func() { _ = notification.CloseLogger() }()

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
