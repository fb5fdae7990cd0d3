package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
	"github.com/gridbase-io/gridbase-go/pkg/gridbaseclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Gridbase",
		Long:  "Authenticate with a Gridbase API endpoint and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := viper.GetString("endpoint")
			if endpoint == "" {
				return ErrEndpointNotConfigured
			}

			if email == "" {
				email = viper.GetString("email")
			}

			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			client, err := gridbaseclient.New(&gridbase.Config{Endpoint: endpoint})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			result, err := client.Auth().Login(context.Background(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			config := loadConfig()
			config.Endpoint = endpoint
			config.Email = result.User.Email
			config.Token = result.Token

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Logged in as %s\n", result.User.Email)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of Gridbase",
		Long:  "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token == "" {
				return ErrNotLoggedIn
			}

			config.Token = ""

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = os.Stdout.WriteString("Logged out\n")

			return nil
		},
	}
}
