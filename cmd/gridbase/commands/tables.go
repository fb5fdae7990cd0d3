package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// NewTablesCommand creates the tables command group.
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Manage tables",
		Long:  "List, create, update, and delete tables within a base",
	}

	cmd.AddCommand(newTablesListCommand())
	cmd.AddCommand(newTablesGetCommand())
	cmd.AddCommand(newTablesCreateCommand())
	cmd.AddCommand(newTablesUpdateCommand())
	cmd.AddCommand(newTablesDeleteCommand())
	cmd.AddCommand(newTablesFieldsCommand())

	return cmd
}

func newTablesListCommand() *cobra.Command {
	var baseID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tables in a base",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseID == "" {
				return ErrBaseRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tables, err := client.Tables().List(context.Background(), baseID)
			if err != nil {
				return fmt.Errorf("failed to list tables: %w", err)
			}

			if handled, err := renderStructured(tables); handled {
				return err
			}

			if len(tables) == 0 {
				_, _ = os.Stdout.WriteString("No tables found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Description")

			for _, tbl := range tables {
				description := tbl.Description
				if description == "" {
					description = NotAvailable
				}

				_ = table.Append(tbl.ID, tbl.Name, description)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&baseID, "base", "b", "", "base ID (required)")
	_ = cmd.MarkFlagRequired("base")

	return cmd
}

func newTablesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE_ID",
		Short: "Get table details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tbl, err := client.Tables().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get table: %w", err)
			}

			if handled, err := renderStructured(tbl); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", tbl.ID)
			_ = table.Append("Base", tbl.BaseID)
			_ = table.Append("Name", tbl.Name)
			_ = table.Append("Description", tbl.Description)
			_ = table.Append("Created", tbl.CreatedAt.Format("2006-01-02 15:04:05"))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newTablesCreateCommand() *cobra.Command {
	var (
		baseID      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseID == "" {
				return ErrBaseRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tbl, err := client.Tables().Create(context.Background(), &gridbase.TableCreateRequest{
				BaseID:      baseID,
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create table: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created table '%s' with ID %s\n", tbl.Name, tbl.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&baseID, "base", "b", "", "base ID (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "table description")
	_ = cmd.MarkFlagRequired("base")

	return cmd
}

func newTablesUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update TABLE_ID",
		Short: "Update a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gridbase.TableUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			tbl, err := client.Tables().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update table: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated table '%s'\n", tbl.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new table name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new table description")

	return cmd
}

func newTablesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TABLE_ID",
		Short: "Delete a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tableID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete table '%s'? (y/N): ", tableID)

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

			err = client.Tables().Delete(context.Background(), tableID)
			if err != nil {
				return fmt.Errorf("failed to delete table: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted table '%s'\n", tableID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newTablesFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields TABLE_ID",
		Short: "List the fields of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			fields, err := client.Fields().List(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list fields: %w", err)
			}

			if handled, err := renderStructured(fields); handled {
				return err
			}

			if len(fields) == 0 {
				_, _ = os.Stdout.WriteString("No fields found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Type", "Required", "Position")

			for _, field := range fields {
				required := "no"
				if field.Required {
					required = "yes"
				}

				_ = table.Append(field.ID, field.Name, field.Type, required, fmt.Sprintf("%d", field.Position))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
