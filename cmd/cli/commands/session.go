package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/session"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an API token",
		Long: `Sign in with an API token. The token is checked against the server and
saved, with the given profile, to the session file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, _ := cmd.Flags().GetString("token")
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")

			c, err := newClient(token)
			if err != nil {
				return err
			}
			// any authenticated route will do
			if _, err := c.GetStats(commandContext(cmd)); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			s := getSession()
			s.Token = token
			s.Admin = session.Admin{Name: name, Email: email}
			if err := s.Save(sessionPath); err != nil {
				return err
			}
			apiClient = c

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in to %s\n", serverAddress)
			return err
		},
	}
	cmd.Flags().StringP("token", "t", "", "API token")
	cmd.Flags().String("name", "", "Your name")
	cmd.Flags().String("email", "", "Your email")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := getSession().Clear(sessionPath); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return err
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := getSession()
			if !s.LoggedIn() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return err
			}
			return printJSON(cmd.OutOrStdout(), struct {
				Server   string `json:"server"`
				Name     string `json:"name,omitempty"`
				Email    string `json:"email,omitempty"`
				Theme    string `json:"theme"`
				Language string `json:"language"`
			}{
				Server:   serverAddress,
				Name:     s.Admin.Name,
				Email:    s.Admin.Email,
				Theme:    s.Theme,
				Language: s.Language,
			})
		},
	}
}
