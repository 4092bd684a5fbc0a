package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/intacct-go/intacct-client/internal/constants"
	"github.com/intacct-go/intacct-client/pkg/iaclient"
	"github.com/intacct-go/intacct-client/pkg/intacct"
)

// CLIConfig is the persisted CLI configuration.
type CLIConfig struct {
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	SenderID       string `json:"sender_id,omitempty"       yaml:"sender_id,omitempty"`
	SenderPassword string `json:"sender_password,omitempty" yaml:"sender_password,omitempty"`
	UserID         string `json:"user_id,omitempty"         yaml:"user_id,omitempty"`
	CompanyID      string `json:"company_id,omitempty"      yaml:"company_id,omitempty"`
	UserPassword   string `json:"user_password,omitempty"   yaml:"user_password,omitempty"`

	// Control and operation overrides
	UniqueID          string `json:"uniqueid,omitempty"          yaml:"uniqueid,omitempty"`
	DTDVersion        string `json:"dtdversion,omitempty"        yaml:"dtdversion,omitempty"`
	IncludeWhitespace string `json:"includewhitespace,omitempty" yaml:"includewhitespace,omitempty"`
	Transaction       string `json:"transaction,omitempty"       yaml:"transaction,omitempty"`

	// Global settings
	Output string `json:"output" yaml:"output"`
}

// configFilePath returns the config file location, creating the directory
// when needed.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".intacct")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// loadConfig assembles the effective configuration from viper (flags, env,
// config file).
func loadConfig() *CLIConfig {
	output := viper.GetString("output")
	if output == "" {
		output = constants.FormatTable
	}

	return &CLIConfig{
		Endpoint:          viper.GetString("endpoint"),
		SenderID:          viper.GetString("sender_id"),
		SenderPassword:    viper.GetString("sender_password"),
		UserID:            viper.GetString("user_id"),
		CompanyID:         viper.GetString("company_id"),
		UserPassword:      viper.GetString("user_password"),
		UniqueID:          viper.GetString("uniqueid"),
		DTDVersion:        viper.GetString("dtdversion"),
		IncludeWhitespace: viper.GetString("includewhitespace"),
		Transaction:       viper.GetString("transaction"),
		Output:            output,
	}
}

// saveConfig persists the configuration to the config file.
func saveConfig(config *CLIConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// credentials builds the gateway credential set from the effective config.
func (c *CLIConfig) credentials() intacct.Credentials {
	return intacct.Credentials{
		SenderID:       c.SenderID,
		SenderPassword: c.SenderPassword,
		UserID:         c.UserID,
		CompanyID:      c.CompanyID,
		UserPassword:   c.UserPassword,
	}
}

// overrides builds the request overrides from the effective config.
func (c *CLIConfig) overrides() intacct.Overrides {
	return intacct.Overrides{
		UniqueID:          c.UniqueID,
		DTDVersion:        c.DTDVersion,
		IncludeWhitespace: c.IncludeWhitespace,
		Transaction:       c.Transaction,
	}
}

// newClient builds a gateway client from the effective configuration.
// Credential completeness is enforced lazily when the first request is sent,
// so the missing keys are named in the error the user sees.
func newClient(ctx context.Context) (intacct.Client, error) {
	config := loadConfig()

	clientConfig := &intacct.Config{
		Endpoint:    config.Endpoint,
		Credentials: config.credentials(),
		Overrides:   config.overrides(),
		Debug:       viper.GetBool("verbose"),
	}

	if viper.GetBool("verbose") {
		clientConfig.Logger = newStderrLogger()
	}

	return iaclient.New(ctx, clientConfig)
}

// stderrLogger is a minimal Logger for verbose CLI runs.
type stderrLogger struct{}

func newStderrLogger() *stderrLogger {
	return &stderrLogger{}
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s %v\n", level, msg, fields)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }
