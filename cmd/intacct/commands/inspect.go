package commands

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/intacct-go/intacct-client/internal/constants"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <object-type>",
		Short: "List the fields of an object type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := client.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(resp.Results) == 0 {
				return nil
			}

			fields := fieldNames(resp.Results[0].Data)

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(fields)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(fields)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field")

				for _, field := range fields {
					_ = table.Append(field)
				}

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

// fieldNames lists the leaf element names of an inspect result payload, in
// document order. The payload shape varies per object type, so this walks
// tokens instead of decoding into a fixed struct.
func fieldNames(data []byte) []string {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		fields []string
		depth  int
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			return fields
		}

		switch el := token.(type) {
		case xml.StartElement:
			depth++
			if depth > 1 {
				fields = append(fields, el.Name.Local)
			}
		case xml.EndElement:
			depth--
		}
	}
}
