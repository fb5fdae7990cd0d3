package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		baseID  string
		tableID string
		limit   int
		types   []string
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search bases, tables, and records",
		Long:  "Search across everything you can access, or scope to one base or table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := &gridbase.SearchOptions{
				Limit: limit,
				Types: types,
			}

			var results *gridbase.SearchResults

			switch {
			case tableID != "":
				results, err = client.Search().InTable(ctx, tableID, args[0], opts)
			case baseID != "":
				results, err = client.Search().InBase(ctx, baseID, args[0], opts)
			default:
				results, err = client.Search().Global(ctx, args[0], opts)
			}

			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if handled, err := renderStructured(results); handled {
				return err
			}

			return renderSearchResults(results)
		},
	}

	cmd.Flags().StringVarP(&baseID, "base", "b", "", "scope search to a base")
	cmd.Flags().StringVarP(&tableID, "table", "T", "", "scope search to a table")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results per kind")
	cmd.Flags().StringSliceVar(&types, "type", nil, "restrict result kinds (base, table, record)")

	return cmd
}

func renderSearchResults(results *gridbase.SearchResults) error {
	total := len(results.Bases) + len(results.Tables) + len(results.Records)
	if total == 0 {
		_, _ = os.Stdout.WriteString("No results found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Kind", "ID", "Name")

	for _, base := range results.Bases {
		_ = table.Append("base", base.ID, base.Name)
	}

	for _, tbl := range results.Tables {
		_ = table.Append("table", tbl.ID, tbl.Name)
	}

	for _, record := range results.Records {
		_ = table.Append("record", record.ID, summarizeFields(record.Fields))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// summarizeFields renders a short preview of a record's cell data.
func summarizeFields(fields map[string]any) string {
	const maxLen = 60

	summary := ""

	for name, value := range fields {
		entry := fmt.Sprintf("%s=%v", name, value)
		if summary != "" {
			entry = ", " + entry
		}

		if len(summary)+len(entry) > maxLen {
			return summary + ", ..."
		}

		summary += entry
	}

	return summary
}
