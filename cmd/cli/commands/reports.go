package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/resources"
)

func newReportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Manage reports",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.DeleteReport(commandContext(cmd), id); err != nil {
				return fmt.Errorf("error deleting report %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagReport)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Report %d deleted\n", id)
			return err
		},
	})
	return cmd
}
