package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
)

func newCompaniesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
	}
	cmd.AddCommand(newGetCompanyCmd(), newCreateCompanyCmd(), newUpdateCompanyCmd(), newDeleteCompanyCmd())
	return cmd
}

func newGetCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a company with its order and employer counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			details, err := apiClient.GetCompany(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("error fetching company %d: %w", id, err)
			}
			return printJSON(cmd.OutOrStdout(), details)
		},
	}
}

func addCompanyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Company name")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("phone", "", "Contact phone")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("status", "", "Status: active or inactive")
}

func newCreateCompanyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			phone, _ := cmd.Flags().GetString("phone")
			address, _ := cmd.Flags().GetString("address")
			status, _ := cmd.Flags().GetString("status")

			req := handlers.CreateCompanyParams{Name: name, Email: email, Phone: phone, Address: address, Status: status}
			if err := req.Validate(); err != nil {
				return err
			}

			company, err := apiClient.CreateCompany(commandContext(cmd), req)
			if err != nil {
				return fmt.Errorf("error creating company: %w", err)
			}
			getStore().Invalidate(resources.TagCompany)
			return printJSON(cmd.OutOrStdout(), company)
		},
	}
	addCompanyFlags(cmd)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newUpdateCompanyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a company, only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			phone, _ := cmd.Flags().GetString("phone")
			address, _ := cmd.Flags().GetString("address")
			status, _ := cmd.Flags().GetString("status")

			req := handlers.UpdateCompanyParams{Name: name, Email: email, Phone: phone, Address: address, Status: status}
			if err := req.Validate(); err != nil {
				return err
			}

			company, err := apiClient.UpdateCompany(commandContext(cmd), id, req)
			if err != nil {
				return fmt.Errorf("error updating company %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagCompany)
			return printJSON(cmd.OutOrStdout(), company)
		},
	}
	addCompanyFlags(cmd)
	return cmd
}

func newDeleteCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.DeleteCompany(commandContext(cmd), id); err != nil {
				return fmt.Errorf("error deleting company %d: %w", id, err)
			}
			getStore().Invalidate(resources.TagCompany)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Company %d deleted\n", id)
			return err
		},
	}
}
