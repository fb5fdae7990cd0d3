package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gridbase-io/gridbase-go/internal/constants"
)

// Config represents the persisted CLI configuration.
type Config struct {
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	APIKey   string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	Token    string `json:"token,omitempty"    yaml:"token,omitempty"`
	Email    string `json:"email,omitempty"    yaml:"email,omitempty"`
	Output   string `json:"output,omitempty"   yaml:"output,omitempty"`
}

// loadConfig builds the effective config from viper, which merges the config
// file, environment variables, and flags.
func loadConfig() *Config {
	return &Config{
		Endpoint: viper.GetString("endpoint"),
		APIKey:   viper.GetString("api_key"),
		Token:    viper.GetString("token"),
		Email:    viper.GetString("email"),
		Output:   viper.GetString("output"),
	}
}

// saveConfig writes the config to the active config file, creating
// ~/.gridbase/config.yml when none is in use.
func saveConfig(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".gridbase")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Gridbase CLI configuration including endpoint and credentials",
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
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// Never print credentials
			display := *config
			if display.APIKey != "" {
				display.APIKey = "***"
			}

			if display.Token != "" {
				display.Token = "***"
			}

			if handled, err := renderStructured(display); handled {
				return err
			}

			return renderYAML(display)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (endpoint, api_key, token, email, output)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			switch key {
			case "endpoint":
				config.Endpoint = value
			case "api_key":
				config.APIKey = value
			case "token":
				config.Token = value
			case "email":
				config.Email = value
			case "output":
				config.Output = value
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config := loadConfig()

			switch key {
			case "endpoint":
				config.Endpoint = ""
			case "api_key":
				config.APIKey = ""
			case "token":
				config.Token = ""
			case "email":
				config.Email = ""
			case "output":
				config.Output = ""
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unset %s\n", key)

			return nil
		},
	}
}
