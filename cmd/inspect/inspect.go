package inspect

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relaykit/mock-provider/internal/conf"
	"github.com/relaykit/mock-provider/internal/logging"
	"github.com/relaykit/mock-provider/internal/notification"
)

// Command returns a cobra command that prints the provider manifest and the
// rate-limit configuration resolved from the current settings.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the provider manifest and resolved rate-limit config",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := notification.NewMockProvider(
				notification.WithLogger(logging.ForService("notification")),
			)

			if err := provider.Initialize(cmd.Context(), &notification.ProviderConfig{
				ID:          settings.Provider.ID,
				Credentials: settings.Provider.Credentials,
				Options:     settings.Provider.Options,
			}); err != nil {
				return fmt.Errorf("initializing provider: %w", err)
			}
			defer func() { _ = provider.Shutdown(cmd.Context()) }()

			out := struct {
				Manifest  notification.Manifest        `json:"manifest"`
				RateLimit notification.RateLimitConfig `json:"rate_limit"`
			}{
				Manifest:  provider.Manifest(),
				RateLimit: provider.RateLimitConfig(),
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling manifest: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	return cmd
}
