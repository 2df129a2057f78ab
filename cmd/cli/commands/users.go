package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/resources"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"employers"},
		Short:   "Manage employers",
	}
	cmd.AddCommand(newBlockUserCmd(), newActivateUserCmd())
	return cmd
}

func newBlockUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block <id>",
		Short: "Block an employer, or unblock with --unblock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			unblock, _ := cmd.Flags().GetBool("unblock")

			employer, err := apiClient.BlockEmployer(commandContext(cmd), id, !unblock)
			if err != nil {
				return fmt.Errorf("error updating employer %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagEmployer)
			return printJSON(cmd.OutOrStdout(), employer)
		},
	}
	cmd.Flags().Bool("unblock", false, "Unblock instead of block")
	return cmd
}

func newActivateUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Approve a pending employer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			employer, err := apiClient.ActivateEmployer(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("error activating employer %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagEmployer)
			return printJSON(cmd.OutOrStdout(), employer)
		},
	}
}
