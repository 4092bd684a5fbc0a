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
	"github.com/intacct-go/intacct-client/pkg/intacct"
)

// functionSpec is one entry of a batch file. Arguments keep the order they
// have in the file.
type functionSpec struct {
	Operation string    `yaml:"operation"`
	Object    string    `yaml:"object"`
	Arguments yaml.Node `yaml:"arguments"`
}

// batchFile is the on-disk shape consumed by `intacct send --file`.
type batchFile struct {
	Transaction string         `yaml:"transaction"`
	Functions   []functionSpec `yaml:"functions"`
}

// resultView is the output shape of one function result.
type resultView struct {
	ControlID string `json:"controlid" yaml:"controlid"`
	Function  string `json:"function"  yaml:"function"`
	Status    string `json:"status"    yaml:"status"`
	Data      string `json:"data,omitempty" yaml:"data,omitempty"`
}

// NewSendCommand creates the send command.
func NewSendCommand() *cobra.Command {
	var (
		file        string
		transaction bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a batch of functions from a file",
		Long: `Load an ordered list of functions from a YAML file and send them as a
single request. With --transaction the gateway applies all functions
atomically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return constants.ErrFunctionsFileRequired
			}

			batch, functions, err := loadBatchFile(file)
			if err != nil {
				return err
			}

			if transaction {
				batch.Transaction = "true"
			}

			if batch.Transaction != "" {
				viper.Set("transaction", batch.Transaction)
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := client.Execute(cmd.Context(), functions...)
			if err != nil {
				return err
			}

			return renderResults(resp)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the functions to send")
	cmd.Flags().BoolVar(&transaction, "transaction", false, "apply all functions in one server transaction")

	return cmd
}

// loadBatchFile reads and validates a batch file, returning the parsed file
// and the ordered function list.
func loadBatchFile(path string) (*batchFile, []intacct.Function, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return nil, nil, fmt.Errorf("reading functions file: %w", err)
	}

	var batch batchFile

	err = yaml.Unmarshal(data, &batch)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing functions file: %w", err)
	}

	if len(batch.Functions) == 0 {
		return nil, nil, constants.ErrNoFunctionsInFile
	}

	functions := make([]intacct.Function, 0, len(batch.Functions))

	for i, spec := range batch.Functions {
		fn, err := spec.toFunction()
		if err != nil {
			return nil, nil, fmt.Errorf("function %d: %w", i+1, err)
		}

		functions = append(functions, fn)
	}

	return &batch, functions, nil
}

// toFunction converts a file entry to an intacct.Function, preserving the
// argument order of the document.
func (s functionSpec) toFunction() (intacct.Function, error) {
	kind, err := parseOperationKind(s.Operation)
	if err != nil {
		return intacct.Function{}, err
	}

	if s.Object == "" && kind != intacct.OperationGetSession {
		return intacct.Function{}, constants.ErrObjectTypeRequired
	}

	args, err := argumentsFromNode(s.Arguments)
	if err != nil {
		return intacct.Function{}, err
	}

	return intacct.NewFunction(kind, s.Object, args...), nil
}

func parseOperationKind(operation string) (intacct.OperationKind, error) {
	kinds := []intacct.OperationKind{
		intacct.OperationCreate,
		intacct.OperationRead,
		intacct.OperationUpdate,
		intacct.OperationDelete,
		intacct.OperationInspect,
		intacct.OperationReadByName,
		intacct.OperationReadByQuery,
		intacct.OperationGetSession,
	}

	for _, kind := range kinds {
		if operation == string(kind) {
			return kind, nil
		}
	}

	return "", fmt.Errorf("%w: %q", constants.ErrInvalidOperationKind, operation)
}

// argumentsFromNode extracts ordered arguments from a YAML mapping node. A
// plain map would lose document order, which is load-bearing for the gateway.
func argumentsFromNode(node yaml.Node) ([]intacct.Argument, error) {
	if node.Kind == 0 {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, constants.ErrArgumentsNotMapping
	}

	args := make([]intacct.Argument, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		args = append(args, intacct.Arg(node.Content[i].Value, node.Content[i+1].Value))
	}

	return args, nil
}

func renderResults(resp *intacct.Response) error {
	views := make([]resultView, 0, len(resp.Results))
	for _, result := range resp.Results {
		views = append(views, resultView{
			ControlID: result.ControlID,
			Function:  result.Function,
			Status:    result.Status,
			Data:      string(result.Data),
		})
	}

	output := viper.GetString("output")
	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(views)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(views)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Control ID", "Function", "Status")

		for _, view := range views {
			_ = table.Append(view.ControlID, view.Function, view.Status)
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
