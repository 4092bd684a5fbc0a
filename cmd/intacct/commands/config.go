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

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Intacct CLI configuration stored in ~/.intacct/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration. Passwords are redacted in table output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(config)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(config)
			default:
				return displayConfigTable(config)
			}
		},
	}
}

func displayConfigTable(config *CLIConfig) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Value")

	_ = table.Append("endpoint", config.Endpoint)
	_ = table.Append("sender_id", config.SenderID)
	_ = table.Append("sender_password", redact(config.SenderPassword))
	_ = table.Append("user_id", config.UserID)
	_ = table.Append("company_id", config.CompanyID)
	_ = table.Append("user_password", redact(config.UserPassword))
	_ = table.Append("uniqueid", config.UniqueID)
	_ = table.Append("dtdversion", config.DTDVersion)
	_ = table.Append("includewhitespace", config.IncludeWhitespace)
	_ = table.Append("transaction", config.Transaction)
	_ = table.Append("output", config.Output)

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func redact(value string) string {
	if value == "" {
		return ""
	}

	return "********"
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			err := config.set(key, value)
			if err != nil {
				return err
			}

			return saveConfig(config)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := config.set(args[0], "")
			if err != nil {
				return err
			}

			return saveConfig(config)
		},
	}
}

// set assigns a value to a named key. Unknown keys are rejected rather than
// silently ignored.
func (c *CLIConfig) set(key, value string) error {
	switch key {
	case "endpoint":
		c.Endpoint = value
	case "sender_id":
		c.SenderID = value
	case "sender_password":
		c.SenderPassword = value
	case "user_id":
		c.UserID = value
	case "company_id":
		c.CompanyID = value
	case "user_password":
		c.UserPassword = value
	case "uniqueid":
		c.UniqueID = value
	case "dtdversion":
		c.DTDVersion = value
	case "includewhitespace":
		c.IncludeWhitespace = value
	case "transaction":
		c.Transaction = value
	case "output":
		c.Output = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}
