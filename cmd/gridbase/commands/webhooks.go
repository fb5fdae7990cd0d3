package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "Manage webhooks",
		Long:  "Register, list, toggle, and inspect webhooks for a base",
	}

	cmd.AddCommand(newWebhooksListCommand())
	cmd.AddCommand(newWebhooksGetCommand())
	cmd.AddCommand(newWebhooksCreateCommand())
	cmd.AddCommand(newWebhooksDeleteCommand())
	cmd.AddCommand(newWebhooksEnableCommand())
	cmd.AddCommand(newWebhooksDisableCommand())
	cmd.AddCommand(newWebhooksDeliveriesCommand())

	return cmd
}

func newWebhooksListCommand() *cobra.Command {
	var baseID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List webhooks for a base",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseID == "" {
				return ErrBaseRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhooks, err := client.Webhooks().ListForBase(context.Background(), baseID)
			if err != nil {
				return fmt.Errorf("failed to list webhooks: %w", err)
			}

			if handled, err := renderStructured(webhooks); handled {
				return err
			}

			if len(webhooks) == 0 {
				_, _ = os.Stdout.WriteString("No webhooks found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "URL", "Events", "Active")

			for _, webhook := range webhooks {
				active := "no"
				if webhook.Active {
					active = "yes"
				}

				events := NotAvailable
				if len(webhook.Events) > 0 {
					events = fmt.Sprintf("%v", webhook.Events)
				}

				_ = table.Append(webhook.ID, webhook.URL, events, active)
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

func newWebhooksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get WEBHOOK_ID",
		Short: "Get webhook details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get webhook: %w", err)
			}

			if handled, err := renderStructured(webhook); handled {
				return err
			}

			active := "no"
			if webhook.Active {
				active = "yes"
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", webhook.ID)
			_ = table.Append("Base", webhook.BaseID)
			_ = table.Append("URL", webhook.URL)
			_ = table.Append("Events", fmt.Sprintf("%v", webhook.Events))
			_ = table.Append("Active", active)
			_ = table.Append("Created", webhook.CreatedAt.Format("2006-01-02 15:04:05"))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newWebhooksCreateCommand() *cobra.Command {
	var (
		baseID string
		events []string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "create URL",
		Short: "Register a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseID == "" {
				return ErrBaseRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().Create(context.Background(), &gridbase.WebhookCreateRequest{
				BaseID: baseID,
				URL:    args[0],
				Events: events,
				Secret: secret,
			})
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created webhook %s for %s\n", webhook.ID, webhook.URL)

			return nil
		},
	}

	cmd.Flags().StringVarP(&baseID, "base", "b", "", "base ID (required)")
	cmd.Flags().StringSliceVar(&events, "event", nil, "events to subscribe to (repeatable)")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret for deliveries")
	_ = cmd.MarkFlagRequired("base")

	return cmd
}

func newWebhooksDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete WEBHOOK_ID",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			webhookID := args[0]

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete webhook '%s'? (y/N): ", webhookID)

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

			err = client.Webhooks().Delete(context.Background(), webhookID)
			if err != nil {
				return fmt.Errorf("failed to delete webhook: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted webhook '%s'\n", webhookID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newWebhooksEnableCommand() *cobra.Command {
	return newWebhookToggleCommand("enable", "Enable a webhook", true)
}

func newWebhooksDisableCommand() *cobra.Command {
	return newWebhookToggleCommand("disable", "Disable a webhook", false)
}

func newWebhookToggleCommand(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " WEBHOOK_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			webhook, err := client.Webhooks().SetActive(context.Background(), args[0], active)
			if err != nil {
				return fmt.Errorf("failed to %s webhook: %w", use, err)
			}

			state := "disabled"
			if webhook.Active {
				state = "enabled"
			}

			_, _ = fmt.Fprintf(os.Stdout, "Webhook %s is now %s\n", webhook.ID, state)

			return nil
		},
	}
}

func newWebhooksDeliveriesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "deliveries WEBHOOK_ID",
		Short: "List recent webhook deliveries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			deliveries, err := client.Webhooks().ListDeliveries(context.Background(), args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to list deliveries: %w", err)
			}

			if handled, err := renderStructured(deliveries); handled {
				return err
			}

			if len(deliveries) == 0 {
				_, _ = os.Stdout.WriteString("No deliveries found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Event", "Status", "Success", "Delivered")

			for _, delivery := range deliveries {
				success := "no"
				if delivery.Success {
					success = "yes"
				}

				_ = table.Append(
					delivery.ID,
					delivery.Event,
					fmt.Sprintf("%d", delivery.StatusCode),
					success,
					delivery.DeliveredAt.Format("2006-01-02 15:04:05"),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of deliveries (default 50)")

	return cmd
}
