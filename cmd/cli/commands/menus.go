package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
)

func newMenusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "menus",
		Aliases: []string{"menu"},
		Short:   "Manage menus",
	}
	cmd.AddCommand(newCreateMenuCmd(), newUpdateMenuCmd(), newDeleteMenuCmd())
	return cmd
}

func newCreateMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a menu item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")
			category, _ := cmd.Flags().GetString("category")
			price, _ := cmd.Flags().GetFloat64("price")

			req := handlers.CreateMenuParams{Name: name, Description: description, Category: category, Price: price}
			if cmd.Flags().Changed("available") {
				available, _ := cmd.Flags().GetBool("available")
				req.Available = &available
			}
			if err := req.Validate(); err != nil {
				return err
			}

			menu, err := apiClient.CreateMenu(commandContext(cmd), req)
			if err != nil {
				return fmt.Errorf("error creating menu: %w", err)
			}
			getStore().Invalidate(resources.TagMenu)
			return printJSON(cmd.OutOrStdout(), menu)
		},
	}
	cmd.Flags().StringP("name", "n", "", "Dish name")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().Float64("price", 0, "Price")
	cmd.Flags().Bool("available", true, "Whether the dish can be ordered")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newUpdateMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a menu item, only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req handlers.UpdateMenuParams
			flags := cmd.Flags()
			if flags.Changed("name") {
				name, _ := flags.GetString("name")
				req.Name = &name
			}
			if flags.Changed("description") {
				description, _ := flags.GetString("description")
				req.Description = &description
			}
			if flags.Changed("category") {
				category, _ := flags.GetString("category")
				req.Category = &category
			}
			if flags.Changed("price") {
				price, _ := flags.GetFloat64("price")
				req.Price = &price
			}
			if flags.Changed("available") {
				available, _ := flags.GetBool("available")
				req.Available = &available
			}
			if err := req.Validate(); err != nil {
				return err
			}

			menu, err := apiClient.UpdateMenu(commandContext(cmd), id, req)
			if err != nil {
				return fmt.Errorf("error updating menu %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagMenu)
			return printJSON(cmd.OutOrStdout(), menu)
		},
	}
	cmd.Flags().StringP("name", "n", "", "Dish name")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().Float64("price", 0, "Price")
	cmd.Flags().Bool("available", true, "Whether the dish can be ordered")
	return cmd
}

func newDeleteMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a menu item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.DeleteMenu(commandContext(cmd), id); err != nil {
				return fmt.Errorf("error deleting menu %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagMenu)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Menu %d deleted\n", id)
			return err
		},
	}
}
