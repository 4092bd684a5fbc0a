package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store gateway credentials",
		Long: `Interactively collect the five gateway credentials and store them in the
CLI configuration. Passwords are read without echo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			reader := bufio.NewReader(os.Stdin)

			var err error

			config.SenderID, err = promptLine(reader, "Sender ID", config.SenderID)
			if err != nil {
				return err
			}

			config.SenderPassword, err = promptPassword("Sender password")
			if err != nil {
				return err
			}

			config.UserID, err = promptLine(reader, "User ID", config.UserID)
			if err != nil {
				return err
			}

			config.CompanyID, err = promptLine(reader, "Company ID", config.CompanyID)
			if err != nil {
				return err
			}

			config.UserPassword, err = promptPassword("User password")
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			if verify {
				client, err := newClient(cmd.Context())
				if err != nil {
					return err
				}

				session, err := client.GetAPISession(cmd.Context())
				if err != nil {
					return fmt.Errorf("verifying credentials: %w", err)
				}

				fmt.Fprintf(os.Stdout, "Logged in, session %s\n", session.ID)

				return nil
			}

			fmt.Fprintln(os.Stdout, "Credentials saved")

			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify credentials by acquiring an API session")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored gateway credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.SenderPassword = ""
			config.UserPassword = ""

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Credentials removed")

			return nil
		},
	}
}

func promptLine(reader *bufio.Reader, label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(os.Stdout, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(os.Stdout, "%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}

	return line, nil
}

func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stdout, "%s: ", label)

	bytePassword, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Fprintln(os.Stdout)

	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}

	return string(bytePassword), nil
}
