package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// NewRecordsCommand creates the records command group.
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage records",
		Long:  "List, create, update, delete, export, and import records within a table",
	}

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsGetCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsUpdateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())
	cmd.AddCommand(newRecordsExportCommand())
	cmd.AddCommand(newRecordsImportCommand())

	return cmd
}

// parseFieldArgs turns repeated NAME=VALUE flags into a field map.
func parseFieldArgs(fieldArgs []string) (map[string]any, error) {
	fields := make(map[string]any, len(fieldArgs))

	for _, arg := range fieldArgs {
		name, value, found := strings.Cut(arg, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid field format '%s', expected NAME=VALUE", arg)
		}

		fields[name] = value
	}

	return fields, nil
}

func newRecordsListCommand() *cobra.Command {
	var (
		tableID string
		limit   int
		offset  int
		sortBy  string
		viewID  string
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records in a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableID == "" {
				return ErrTableRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &gridbase.RecordListOptions{
				Limit:  limit,
				Offset: offset,
				Sort:   sortBy,
				ViewID: viewID,
			}

			for _, filter := range filters {
				field, value, found := strings.Cut(filter, "=")
				if !found || field == "" {
					return fmt.Errorf("invalid filter format '%s', expected FIELD=VALUE", filter)
				}

				opts.WithFilter(field, value)
			}

			records, err := client.Records().List(context.Background(), tableID, opts)
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			if handled, err := renderStructured(records); handled {
				return err
			}

			if len(records) == 0 {
				_, _ = os.Stdout.WriteString("No records found\n")

				return nil
			}

			// Collect field names across records for stable columns
			nameSet := make(map[string]struct{})
			for _, record := range records {
				for name := range record.Fields {
					nameSet[name] = struct{}{}
				}
			}

			names := make([]string, 0, len(nameSet))
			for name := range nameSet {
				names = append(names, name)
			}

			sort.Strings(names)

			header := append([]string{"ID"}, names...)

			table := tablewriter.NewWriter(os.Stdout)
			table.Header(header)

			for _, record := range records {
				row := make([]string, 0, len(header))
				row = append(row, record.ID)

				for _, name := range names {
					value, ok := record.Fields[name]
					if !ok || value == nil {
						row = append(row, "")

						continue
					}

					row = append(row, fmt.Sprintf("%v", value))
				}

				_ = table.Append(row)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableID, "table", "T", "", "table ID (required)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of records to skip")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort expression (field or -field)")
	cmd.Flags().StringVar(&viewID, "view", "", "scope listing to a view")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "field filter (FIELD=VALUE, repeatable)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func newRecordsGetCommand() *cobra.Command {
	var tableID string

	cmd := &cobra.Command{
		Use:   "get RECORD_ID",
		Short: "Get record details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableID == "" {
				return ErrTableRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := client.Records().Get(context.Background(), tableID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			if handled, err := renderStructured(record); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			_ = table.Append("ID", record.ID)

			names := make([]string, 0, len(record.Fields))
			for name := range record.Fields {
				names = append(names, name)
			}

			sort.Strings(names)

			for _, name := range names {
				_ = table.Append(name, fmt.Sprintf("%v", record.Fields[name]))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableID, "table", "T", "", "table ID (required)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func newRecordsCreateCommand() *cobra.Command {
	var (
		tableID   string
		fieldArgs []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableID == "" {
				return ErrTableRequired
			}

			if len(fieldArgs) == 0 {
				return ErrFieldsRequired
			}

			fields, err := parseFieldArgs(fieldArgs)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := client.Records().Create(context.Background(), tableID, &gridbase.RecordCreateRequest{
				Fields: fields,
			})
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created record %s\n", record.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableID, "table", "T", "", "table ID (required)")
	cmd.Flags().StringArrayVar(&fieldArgs, "field", nil, "field value (NAME=VALUE, repeatable)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func newRecordsUpdateCommand() *cobra.Command {
	var (
		tableID   string
		fieldArgs []string
	)

	cmd := &cobra.Command{
		Use:   "update RECORD_ID",
		Short: "Update a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableID == "" {
				return ErrTableRequired
			}

			if len(fieldArgs) == 0 {
				return ErrFieldsRequired
			}

			fields, err := parseFieldArgs(fieldArgs)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			record, err := client.Records().Update(context.Background(), tableID, args[0], &gridbase.RecordUpdateRequest{
				Fields: fields,
			})
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated record %s\n", record.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableID, "table", "T", "", "table ID (required)")
	cmd.Flags().StringArrayVar(&fieldArgs, "field", nil, "field value (NAME=VALUE, repeatable)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func newRecordsDeleteCommand() *cobra.Command {
	var (
		tableID string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "delete RECORD_ID...",
		Short: "Delete one or more records",
		Long:  "Delete a record, or several records in one bulk request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableID == "" {
				return ErrTableRequired
			}

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete %d record(s)? (y/N): ", len(args))

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if len(args) == 1 {
				err = client.Records().Delete(ctx, tableID, args[0])
				if err != nil {
					return fmt.Errorf("failed to delete record: %w", err)
				}

				_, _ = fmt.Fprintf(os.Stdout, "Deleted record %s\n", args[0])

				return nil
			}

			result, err := client.Records().BulkDelete(ctx, tableID, args)
			if err != nil {
				return fmt.Errorf("failed to delete records: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted %d record(s)\n", result.DeletedCount)

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableID, "table", "T", "", "table ID (required)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func newRecordsExportCommand() *cobra.Command {
	var (
		tableID   string
		viewID    string
		delimiter string
		outFile   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableID == "" {
				return ErrTableRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			data, err := client.ImportExport().ExportCSV(context.Background(), tableID, &gridbase.ExportOptions{
				ViewID:    viewID,
				Delimiter: delimiter,
			})
			if err != nil {
				return fmt.Errorf("failed to export records: %w", err)
			}

			if outFile == "" {
				_, _ = os.Stdout.Write(data)

				return nil
			}

			err = os.WriteFile(outFile, data, 0o600)
			if err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Exported %d bytes to %s\n", len(data), outFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableID, "table", "T", "", "table ID (required)")
	cmd.Flags().StringVar(&viewID, "view", "", "export only records visible in a view")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV delimiter (default comma)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write CSV to a file instead of stdout")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func newRecordsImportCommand() *cobra.Command {
	var (
		tableID   string
		headerRow bool
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import records from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableID == "" {
				return ErrTableRequired
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read CSV file: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.ImportExport().ImportCSV(context.Background(), tableID, data, &gridbase.ImportOptions{
				HeaderRow: headerRow,
				Delimiter: delimiter,
			})
			if err != nil {
				return fmt.Errorf("failed to import records: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Imported %d record(s), %d failed\n", result.RecordsCreated, result.RecordsFailed)

			for _, importError := range result.Errors {
				_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", importError)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&tableID, "table", "T", "", "table ID (required)")
	cmd.Flags().BoolVar(&headerRow, "header-row", true, "treat the first row as field names")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV delimiter (default comma)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}
