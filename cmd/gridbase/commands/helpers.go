package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
	"github.com/gridbase-io/gridbase-go/pkg/gridbaseclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrEndpointNotConfigured = errors.New("no API endpoint configured (use --endpoint, GRIDBASE_ENDPOINT, or 'gridbase config set endpoint')")
	ErrEmailRequired         = errors.New("email is required")
	ErrBaseRequired          = errors.New("base is required (use --base)")
	ErrTableRequired         = errors.New("table is required (use --table)")
	ErrFieldsRequired        = errors.New("at least one field is required (use --field NAME=VALUE)")
	ErrNotLoggedIn           = errors.New("not logged in")
)

// CreateClient builds a Gridbase client from the effective CLI configuration.
func CreateClient() (gridbase.Client, error) {
	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	client, err := gridbaseclient.New(&gridbase.Config{
		Endpoint: endpoint,
		APIKey:   viper.GetString("api_key"),
		Token:    viper.GetString("token"),
		Debug:    viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// renderStructured dispatches to the JSON or YAML renderer for non-table
// output formats. It reports whether it handled the output.
func renderStructured(data any) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return true, renderJSON(data)
	case OutputFormatYAML:
		return true, renderYAML(data)
	default:
		return false, nil
	}
}
