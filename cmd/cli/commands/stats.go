package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/pkg/models"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := apiClient.GetStats(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("error fetching stats: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
	cmd.AddCommand(newOverviewCmd())
	return cmd
}

// overviewOutput is the JSON form of the monthly charts
type overviewOutput struct {
	Users    models.UserOverview    `json:"users"`
	Earnings models.EarningOverview `json:"earnings"`
}

func newOverviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show monthly sign-ups and income for a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, _ := cmd.Flags().GetInt("year")
			output, _ := cmd.Flags().GetString("output")
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("invalid output format %q: must be %s or %s", output, outputTable, outputJSON)
			}
			if year != 0 && (year < 1970 || year > 9999) {
				return fmt.Errorf("invalid year %d: must be between 1970 and 9999", year)
			}

			ctx := commandContext(cmd)
			users, err := apiClient.GetUserOverview(ctx, year)
			if err != nil {
				return fmt.Errorf("error fetching user overview: %w", err)
			}
			earnings, err := apiClient.GetEarningOverview(ctx, year)
			if err != nil {
				return fmt.Errorf("error fetching earning overview: %w", err)
			}

			if output == outputJSON {
				return printJSON(cmd.OutOrStdout(), overviewOutput{Users: users, Earnings: earnings})
			}
			return printOverview(cmd.OutOrStdout(), users, earnings)
		},
	}
	cmd.Flags().Int("year", 0, "Year to chart (default current year)")
	cmd.Flags().StringP("output", "O", outputTable, "Output format: table or json")
	return cmd
}

// printOverview renders both charts month by month
func printOverview(w io.Writer, users models.UserOverview, earnings models.EarningOverview) error {
	income := make(map[string]float64, len(earnings.Result))
	for _, m := range earnings.Result {
		income[m.Month] = m.Income
	}

	rows := make([][]string, len(users.Result))
	for i, m := range users.Result {
		rows[i] = []string{m.Month, strconv.FormatInt(m.Users, 10), strconv.FormatFloat(income[m.Month], 'f', -1, 64)}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Month", "Users", "Income").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%d\n%s\nYearly total: %s\n", users.Year, t.String(), strconv.FormatFloat(earnings.YearlyTotal, 'f', -1, 64))
	return err
}
