package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/pkg/models"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
	}
	cmd.AddCommand(newOrderStatusCmd())
	return cmd
}

func newOrderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <pending|complete|cancel>",
		Short: "Change the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := models.ParseOrderStatus(args[1])
			if err != nil {
				return err
			}

			order, err := apiClient.UpdateOrderStatus(commandContext(cmd), id, string(status))
			if err != nil {
				return fmt.Errorf("error updating order %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagOrder)
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}
