package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/pkg/models"
)

func newPaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Manage company payments",
	}
	cmd.AddCommand(newUpdatePaymentCmd())
	return cmd
}

func newUpdatePaymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <paid|unpaid>",
		Short: "Mark a monthly payment as paid or unpaid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status, err := models.ParsePaymentStatus(args[1])
			if err != nil {
				return err
			}

			payment, err := apiClient.UpdatePayment(commandContext(cmd), id, string(status))
			if err != nil {
				return fmt.Errorf("error updating payment %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagPayment)
			return printJSON(cmd.OutOrStdout(), payment)
		},
	}
}
