package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/relaykit/mock-provider/internal/conf"
	"github.com/relaykit/mock-provider/internal/errors"
	"github.com/relaykit/mock-provider/internal/notification"
)

// Command returns a cobra command that validates a notification JSON
// document against the provider's schema, the same check the host's inbound
// dispatch pipeline performs before invoking Send.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [payload.json]",
		Short: "Validate a notification payload against the provider schema",
		Long: `Validate a notification payload against the provider schema.

Reads the payload from the given file, or from stdin when no file is named.

Examples:
  mock-provider validate payload.json
  cat payload.json | mock-provider validate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			input, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			result := notification.NotificationSchema().Validate(input)
			if result.Valid {
				data, err := json.MarshalIndent(result.Notification(), "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling normalized payload: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "payload is valid")
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			for _, v := range result.Violations {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s %s\n", v.Field, v.Message)
			}
			return errors.Newf("payload failed validation with %d violation(s)", len(result.Violations)).
				Component("cmd").
				Category(errors.CategoryValidation).
				Build()
		},
	}

	return cmd
}

// readPayload loads the JSON document from the named file or stdin and
// decodes it into the loosely typed map the schema validates.
func readPayload(cmd *cobra.Command, args []string) (map[string]any, error) {
	var data []byte
	var err error

	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, errors.New(err).
				Component("cmd").
				Category(errors.CategoryFileIO).
				Context("path", args[0]).
				Build()
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
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
