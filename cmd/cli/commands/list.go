package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// output formats
const (
	outputTable = "table"
	outputJSON  = "json"
)

// listOutput is the JSON form of one listed page
type listOutput struct {
	Resource   string         `json:"resource"`
	Items      []query.Record `json:"items"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List one page of a resource",
		Long: fmt.Sprintf(`List one page of a resource, optionally searched and filtered.

Resources: %s

Filters are given as key=value, for example:
  lunchdesk list orders --filter status=pending --filter date=2024-03-01

Nested lists need their parent, for example:
  lunchdesk list company-orders --company 3`, strings.Join(resources.Names(), ", ")),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeResource,
		RunE:              runList,
	}

	cmd.Flags().String("search", "", "Search term")
	cmd.Flags().IntP("page", "p", 1, "Page number")
	cmd.Flags().IntP("limit", "l", 0, "Page size (default from LUNCHDESK_PAGE_SIZE)")
	cmd.Flags().StringArrayP("filter", "f", nil, "Filter as key=value, repeatable")
	cmd.Flags().StringP("output", "O", outputTable, "Output format: table or json")
	cmd.Flags().Uint(flagCompany, 0, "Company id of nested lists such as company-orders")
	return cmd
}

// bindParent binds a nested resource to the parent given by --company
func bindParent(cmd *cobra.Command, res *resources.Resource) (*resources.Resource, error) {
	parentID, _ := cmd.Flags().GetUint(flagCompany)
	if !res.Nested() {
		if parentID != 0 {
			return nil, fmt.Errorf("--%s does not apply to %s", flagCompany, res.Name)
		}
		return res, nil
	}
	bound, err := res.In(parentID)
	if err != nil {
		return nil, fmt.Errorf("%w: pass --%s", err, flagCompany)
	}
	return bound, nil
}

// completeResource offers resource names and aliases for the first argument
func completeResource(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, r := range resources.All() {
		out = append(out, r.Name+"\t"+r.Title)
		out = append(out, r.Aliases...)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func runList(cmd *cobra.Command, args []string) error {
	res, err := resources.Lookup(args[0])
	if err != nil {
		return err
	}
	if res, err = bindParent(cmd, res); err != nil {
		return err
	}

	search, _ := cmd.Flags().GetString("search")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	filterArgs, _ := cmd.Flags().GetStringArray("filter")
	output, _ := cmd.Flags().GetString("output")

	if output != outputTable && output != outputJSON {
		return fmt.Errorf("invalid output format %q: must be %s or %s", output, outputTable, outputJSON)
	}
	if page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", page)
	}
	if limit <= 0 {
		limit = getConfig().Query.Limit
	}

	filters, err := res.ParseFilters(filterArgs)
	if err != nil {
		return err
	}

	opts := res.Options(query.Options{Limit: limit, Filters: filters})
	params := query.ComputeParams(query.State{
		DebouncedSearchTerm: strings.TrimSpace(search),
		CurrentPage:         page,
		Filters:             filters,
	}, opts)

	fetch := res.Fetcher(apiClient, getStore())
	env, err := fetch(commandContext(cmd), params)
	if err != nil {
		return fmt.Errorf("error fetching %s: %w", res.Name, err)
	}
	result := query.Normalize[query.Record](env, res.ResultsKey)

	if output == outputJSON {
		return printJSON(cmd.OutOrStdout(), listOutput{
			Resource:   res.Name,
			Items:      result.Items,
			Page:       result.Page,
			TotalPages: result.TotalPages,
		})
	}
	return printTable(cmd.OutOrStdout(), res, result)
}

// printTable renders a page of results with the resource's columns
func printTable(w io.Writer, res *resources.Resource, result query.Result[query.Record]) error {
	if len(result.Items) == 0 {
		_, err := fmt.Fprintf(w, "No %s found\n", strings.ToLower(res.Title))
		return err
	}

	headers := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		headers[i] = c.Title
	}
	rows := make([][]string, len(result.Items))
	for i, item := range result.Items {
		rows[i] = res.Row(item)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\nPage %d of %d\n", t.String(), result.Page, result.TotalPages)
	return err
}
