package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/lunchdesk/lunchdesk/internal/resources"
	"github.com/lunchdesk/lunchdesk/internal/ui"
	"github.com/lunchdesk/lunchdesk/pkg/api/v1/handlers"
	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// recordID reads the id of a listed row
func recordID(rec query.Record) (uint, error) {
	switch v := rec["id"].(type) {
	case float64:
		if v >= 1 && v == float64(uint(v)) {
			return uint(v), nil
		}
	case int:
		if v > 0 {
			return uint(v), nil
		}
	}
	return 0, fmt.Errorf("row has no valid id: %v", rec["id"])
}

// mutate runs fn on the row's id and drops the cached lists under tag, which
// refetches every open list showing them
func mutate(tag string, fn func(ctx context.Context, id uint) (string, error)) func(context.Context, query.Record) (string, error) {
	return func(ctx context.Context, rec query.Record) (string, error) {
		id, err := recordID(rec)
		if err != nil {
			return "", err
		}
		status, err := fn(ctx, id)
		if err != nil {
			return "", err
		}
		getStore().Invalidate(tag)
		return status, nil
	}
}

func binding(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

func orderStatusAction(k, desc, status string, confirm bool) ui.Action {
	return ui.Action{
		Key:     binding(k, desc),
		Confirm: confirm,
		Run: mutate(resources.TagOrder, func(ctx context.Context, id uint) (string, error) {
			if _, err := apiClient.UpdateOrderStatus(ctx, id, status); err != nil {
				return "", fmt.Errorf("error updating order %d: %w", id, err)
			}
			return fmt.Sprintf("Order %d marked %s", id, status), nil
		}),
	}
}

// browseActions returns the row actions of a resource's browser
func browseActions(res *resources.Resource) []ui.Action {
	switch res.Name {
	case "companies":
		return []ui.Action{{
			Key:     binding("x", "delete"),
			Confirm: true,
			Run: mutate(resources.TagCompany, func(ctx context.Context, id uint) (string, error) {
				if err := apiClient.DeleteCompany(ctx, id); err != nil {
					return "", fmt.Errorf("error deleting company %d: %w", id, err)
				}
				return fmt.Sprintf("Company %d deleted", id), nil
			}),
		}}

	case "employers":
		return []ui.Action{
			{
				Key: binding("b", "block/unblock"),
				Run: func(ctx context.Context, rec query.Record) (string, error) {
					blocked, _ := rec["isBlocked"].(bool)
					return mutate(resources.TagEmployer, func(ctx context.Context, id uint) (string, error) {
						if _, err := apiClient.BlockEmployer(ctx, id, !blocked); err != nil {
							return "", fmt.Errorf("error updating employer %d: %w", id, err)
						}
						if blocked {
							return fmt.Sprintf("Employer %d unblocked", id), nil
						}
						return fmt.Sprintf("Employer %d blocked", id), nil
					})(ctx, rec)
				},
			},
			{
				Key: binding("a", "activate"),
				Run: mutate(resources.TagEmployer, func(ctx context.Context, id uint) (string, error) {
					if _, err := apiClient.ActivateEmployer(ctx, id); err != nil {
						return "", fmt.Errorf("error activating employer %d: %w", id, err)
					}
					return fmt.Sprintf("Employer %d activated", id), nil
				}),
			},
		}

	case "orders", "company-orders":
		return []ui.Action{
			orderStatusAction("c", "complete", "complete", false),
			orderStatusAction("p", "pending", "pending", false),
			orderStatusAction("x", "cancel", "cancel", true),
		}

	case "menus":
		return []ui.Action{
			{
				Key: binding("a", "toggle available"),
				Run: func(ctx context.Context, rec query.Record) (string, error) {
					available, _ := rec["available"].(bool)
					return mutate(resources.TagMenu, func(ctx context.Context, id uint) (string, error) {
						next := !available
						if _, err := apiClient.UpdateMenu(ctx, id, handlers.UpdateMenuParams{Available: &next}); err != nil {
							return "", fmt.Errorf("error updating menu %d: %w", id, err)
						}
						if next {
							return fmt.Sprintf("Menu %d available", id), nil
						}
						return fmt.Sprintf("Menu %d unavailable", id), nil
					})(ctx, rec)
				},
			},
			{
				Key:     binding("x", "delete"),
				Confirm: true,
				Run: mutate(resources.TagMenu, func(ctx context.Context, id uint) (string, error) {
					if err := apiClient.DeleteMenu(ctx, id); err != nil {
						return "", fmt.Errorf("error deleting menu %d: %w", id, err)
					}
					return fmt.Sprintf("Menu %d deleted", id), nil
				}),
			},
		}

	case "payments":
		return []ui.Action{{
			Key: binding("p", "toggle paid"),
			Run: func(ctx context.Context, rec query.Record) (string, error) {
				next := "paid"
				if rec["status"] == "paid" {
					next = "unpaid"
				}
				return mutate(resources.TagPayment, func(ctx context.Context, id uint) (string, error) {
					if _, err := apiClient.UpdatePayment(ctx, id, next); err != nil {
						return "", fmt.Errorf("error updating payment %d: %w", id, err)
					}
					return fmt.Sprintf("Payment %d marked %s", id, next), nil
				})(ctx, rec)
			},
		}}

	case "reports":
		return []ui.Action{{
			Key:     binding("x", "delete"),
			Confirm: true,
			Run: mutate(resources.TagReport, func(ctx context.Context, id uint) (string, error) {
				if err := apiClient.DeleteReport(ctx, id); err != nil {
					return "", fmt.Errorf("error deleting report %d: %w", id, err)
				}
				return fmt.Sprintf("Report %d deleted", id), nil
			}),
		}}
	}
	return nil
}
