package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/intacct-go/intacct-client/internal/constants"
)

// NewSessionCommand creates the session command.
func NewSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Acquire an API session",
		Long:  "Acquire a server-side API session and print its id and endpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			session, err := client.GetAPISession(cmd.Context())
			if err != nil {
				return err
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(session)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(session)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Session ID", session.ID)
				_ = table.Append("Endpoint", session.Endpoint)
				_ = table.Append("Expires", session.ExpiresAt.String())

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
