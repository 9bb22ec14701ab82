package send

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/relaykit/mock-provider/internal/conf"
	"github.com/relaykit/mock-provider/internal/errors"
	"github.com/relaykit/mock-provider/internal/logging"
	"github.com/relaykit/mock-provider/internal/notification"
)

// Command returns a cobra command that runs the full provider lifecycle
// against one notification: initialize, health check, validate, send,
// shutdown. This is the sequence the host runtime performs per provider.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		userID     string
		message    string
		webhookURL string
		file       string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Run the full provider lifecycle against a test notification",
		Long: `Run the full provider lifecycle against a test notification.

Examples:
  # Built-in test payload
  mock-provider send --user-id=user-42 --message="Hello"

  # Payload from a file
  mock-provider send --file=payload.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			input, err := buildPayload(file, userID, message, webhookURL)
			if err != nil {
				return err
			}

			registry := notification.NewRegistry()
			if err := registry.Register(notification.NewMockProvider(
				notification.WithLogger(logging.ForService("notification")),
			)); err != nil {
				return fmt.Errorf("registering provider: %w", err)
			}

			provider, err := registry.Get(notification.ChannelMock)
			if err != nil {
				return fmt.Errorf("looking up provider: %w", err)
			}

			if err := provider.Initialize(cmd.Context(), &notification.ProviderConfig{
				ID:          settings.Provider.ID,
				Credentials: settings.Provider.Credentials,
				Options:     settings.Provider.Options,
			}); err != nil {
				return fmt.Errorf("initializing provider: %w", err)
			}
			defer func() { _ = provider.Shutdown(cmd.Context()) }()

			health := provider.HealthCheck(cmd.Context())
			if !health.Healthy {
				return errors.Newf("provider unhealthy: %s", health.Message).
					Component("cmd").
					Category(errors.CategoryState).
					Build()
			}

			result := provider.NotificationSchema().Validate(input)
			if !result.Valid {
				for _, v := range result.Violations {
					fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s %s\n", v.Field, v.Message)
				}
				return errors.Newf("payload failed validation with %d violation(s)", len(result.Violations)).
					Component("cmd").
					Category(errors.CategoryValidation).
					Build()
			}

			delivery := provider.Send(cmd.Context(), result.Notification())
			data, err := json.MarshalIndent(delivery, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling delivery result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			if !delivery.Success {
				return errors.Newf("delivery failed: %s", delivery.Error).
					Component("cmd").
					Category(errors.CategoryDelivery).
					Build()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "user-1", "Recipient user id for the test payload")
	cmd.Flags().StringVar(&message, "message", "Test notification from mock-provider", "Message body for the test payload")
	cmd.Flags().StringVar(&webhookURL, "webhook-url", "https://dispatch.example.com/hooks/mock", "Webhook URL for the test payload")
	cmd.Flags().StringVar(&file, "file", "", "Read the payload from a JSON file instead of the flags")

	return cmd
}

// buildPayload assembles the loosely typed payload map, either from a JSON
// file or from the command flags.
func buildPayload(file, userID, message, webhookURL string) (map[string]any, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.New(err).
				Component("cmd").
				Category(errors.CategoryFileIO).
				Context("path", file).
				Build()
		}
		var input map[string]any
		if err := json.Unmarshal(data, &input); err != nil {
			return nil, errors.New(err).
				Component("cmd").
				Category(errors.CategoryValidation).
				Context("operation", "decode-payload").
				Build()
		}
		return input, nil
	}

	return map[string]any{
		"notification_id": fmt.Sprintf("ntf-%s", uuid.NewString()),
		"request_id":      uuid.NewString(),
		"client_id":       uuid.NewString(),
		"channel":         notification.ChannelMock,
		"webhook_url":     webhookURL,
		"retry_count":     0,
		"recipient":       map[string]any{"user_id": userID},
		"content":         map[string]any{"message": message},
		"created_at":      time.Now().UTC().Format(time.RFC3339),
	}, nil
}
