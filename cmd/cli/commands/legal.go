package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/pkg/models"
)

func newLegalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legal",
		Short: "Read and edit the about, terms and privacy pages",
	}
	cmd.AddCommand(newGetLegalCmd(), newSetLegalCmd())
	return cmd
}

func newGetLegalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <about|terms|privacy>",
		Short: "Print a legal page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseLegalKind(args[0])
			if err != nil {
				return err
			}
			doc, err := apiClient.GetLegal(commandContext(cmd), string(kind))
			if err != nil {
				return fmt.Errorf("error fetching %s page: %w", kind, err)
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	}
}

func newSetLegalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <about|terms|privacy>",
		Short: "Replace a legal page from --content or --file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := models.ParseLegalKind(args[0])
			if err != nil {
				return err
			}

			content, _ := cmd.Flags().GetString("content")
			if file, _ := cmd.Flags().GetString("file"); file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", file, err)
				}
				content = string(data)
			}
			if content == "" {
				return fmt.Errorf("content cannot be empty")
			}

			doc, err := apiClient.UpdateLegal(commandContext(cmd), string(kind), content)
			if err != nil {
				return fmt.Errorf("error updating %s page: %w", kind, err)
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	}
	cmd.Flags().StringP("content", "c", "", "Page content (HTML)")
	cmd.Flags().String("file", "", "Read the page content from a file")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
	cmd.MarkFlagsOneRequired("content", "file")
	return cmd
}
