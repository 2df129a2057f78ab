package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/lunchdesk/lunchdesk/internal/logger"
	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/internal/ui"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <resource>",
		Short: "Browse a resource interactively",
		Long: `Browse a resource in a full screen list. Type / to search, use the arrow
keys to page, f to cycle the status filter, r to refresh and q to quit.

Rows can be changed in place, for example c completes the selected order and
x cancels it. The help line lists the keys of each resource.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeResource,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := resources.Lookup(args[0])
			if err != nil {
				return err
			}
			if res, err = bindParent(cmd, res); err != nil {
				return err
			}

			filterArgs, _ := cmd.Flags().GetStringArray("filter")
			filters, err := res.ParseFilters(filterArgs)
			if err != nil {
				return err
			}

			c, changes := newBrowseCoordinator(res, filters)
			defer c.Close()

			unsubscribe := getStore().Subscribe(res.Tag, c.Refetch)
			defer unsubscribe()

			// logs written to stderr would tear the full screen view
			logger.SetOutput(io.Discard)
			defer logger.SetOutput(cmd.ErrOrStderr())

			model := ui.NewModel(res, c, changes, ui.NewStyles(getSession().Theme),
				ui.WithActions(browseActions(res)...),
				ui.WithRefresh(func() { getStore().Invalidate(res.Tag) }),
			)
			return ui.Run(model)
		},
	}

	cmd.Flags().StringArrayP("filter", "f", nil, "Initial filter as key=value, repeatable")
	cmd.Flags().Uint(flagCompany, 0, "Company id of nested lists such as company-orders")
	return cmd
}

// newBrowseCoordinator creates the coordinator behind the browser, reporting changes to the returned notifier
func newBrowseCoordinator(res *resources.Resource, filters query.Filters) (*query.Coordinator[query.Record], *ui.Notifier) {
	changes := ui.NewNotifier()
	conf := getConfig()
	opts := res.Options(query.Options{
		Limit:    conf.Query.Limit,
		Debounce: conf.Query.Debounce,
		Filters:  filters,
		OnChange: changes.Notify,
	})
	return query.New[query.Record](res.Fetcher(apiClient, getStore()), opts), changes
}
