package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// NewBasesCommand creates the bases command group.
func NewBasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bases",
		Short: "Manage bases",
		Long:  "List, create, update, delete, and share Gridbase bases",
	}

	cmd.AddCommand(newBasesListCommand())
	cmd.AddCommand(newBasesGetCommand())
	cmd.AddCommand(newBasesCreateCommand())
	cmd.AddCommand(newBasesUpdateCommand())
	cmd.AddCommand(newBasesDeleteCommand())
	cmd.AddCommand(newBasesShareCommand())

	return cmd
}

func newBasesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			bases, err := client.Bases().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list bases: %w", err)
			}

			if handled, err := renderStructured(bases); handled {
				return err
			}

			if len(bases) == 0 {
				_, _ = os.Stdout.WriteString("No bases found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Description", "Created")

			for _, base := range bases {
				description := base.Description
				if description == "" {
					description = NotAvailable
				}

				_ = table.Append(base.ID, base.Name, description, base.CreatedAt.Format("2006-01-02"))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newBasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BASE_ID",
		Short: "Get base details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			base, err := client.Bases().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get base: %w", err)
			}

			if handled, err := renderStructured(base); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", base.ID)
			_ = table.Append("Name", base.Name)
			_ = table.Append("Description", base.Description)
			_ = table.Append("Owner", base.OwnerID)
			_ = table.Append("Created", base.CreatedAt.Format("2006-01-02 15:04:05"))
			_ = table.Append("Updated", base.UpdatedAt.Format("2006-01-02 15:04:05"))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newBasesCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			base, err := client.Bases().Create(context.Background(), &gridbase.BaseCreateRequest{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create base: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created base '%s' with ID %s\n", base.Name, base.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "base description")

	return cmd
}

func newBasesUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update BASE_ID",
		Short: "Update a base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &gridbase.BaseUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("description") {
				request.Description = &description
			}

			base, err := client.Bases().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update base: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated base '%s'\n", base.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new base name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new base description")

	return cmd
}

func newBasesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BASE_ID",
		Short: "Delete a base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete base '%s'? (y/N): ", baseID)

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

			err = client.Bases().Delete(context.Background(), baseID)
			if err != nil {
				return fmt.Errorf("failed to delete base: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted base '%s'\n", baseID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newBasesShareCommand() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "share BASE_ID EMAIL",
		Short: "Share a base with another user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Bases().Share(context.Background(), args[0], &gridbase.BaseShareRequest{
				Email: args[1],
				Role:  role,
			})
			if err != nil {
				return fmt.Errorf("failed to share base: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Shared base '%s' with %s as %s\n", args[0], args[1], role)

			return nil
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "viewer", "role to grant (viewer, editor, admin)")

	return cmd
}
