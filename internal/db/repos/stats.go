package repos

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// StatsRepository aggregates the dashboard counters
type StatsRepository struct {
	db        *gorm.DB
	companies *CompanyRepository
	employers *EmployerRepository
	orders    *OrderRepository
	menus     *MenuRepository
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{
		db:        db,
		companies: NewCompanyRepository(db),
		employers: NewEmployerRepository(db),
		orders:    NewOrderRepository(db),
		menus:     NewMenuRepository(db),
	}
}

// Get computes the current dashboard counters
func (r *StatsRepository) Get(ctx context.Context) (*models.Stats, error) {
	var (
		stats models.Stats
		err   error
	)
	if stats.TotalCompanies, err = r.companies.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}
	if stats.TotalEmployers, err = r.employers.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count employers: %w", err)
	}
	if stats.TotalOrders, err = r.orders.CountByStatus(ctx, ""); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if stats.PendingOrders, err = r.orders.CountByStatus(ctx, models.OrderStatusPending); err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}
	if stats.TotalMenus, err = r.menus.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count menus: %w", err)
	}
	if stats.TotalEarnings, err = r.orders.Earnings(ctx); err != nil {
		return nil, fmt.Errorf("failed to sum earnings: %w", err)
	}
	return &stats, nil
}

// yearRange returns the first instant of year and of the year after, in UTC
func yearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

func monthLabel(m time.Month) string {
	return m.String()[:3]
}

// UserOverview counts employer sign-ups per month of year
func (r *StatsRepository) UserOverview(ctx context.Context, year int) (*models.UserOverview, error) {
	start, end := yearRange(year)

	var created []time.Time
	err := r.db.WithContext(ctx).Model(&models.Employer{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Pluck("created_at", &created).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load employer sign-ups: %w", err)
	}

	overview := &models.UserOverview{Year: year, Result: make([]models.MonthlyUsers, 12)}
	for i := range overview.Result {
		overview.Result[i].Month = monthLabel(time.Month(i + 1))
	}
	for _, t := range created {
		overview.Result[t.UTC().Month()-1].Users++
	}
	return overview, nil
}

// EarningOverview sums the amount of completed orders per month of year
func (r *StatsRepository) EarningOverview(ctx context.Context, year int) (*models.EarningOverview, error) {
	start, end := yearRange(year)

	var rows []struct {
		OrderDate time.Time
		Amount    float64
	}
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("order_date", "amount").
		Where("status = ? AND order_date >= ? AND order_date < ?", models.OrderStatusComplete, start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load earnings: %w", err)
	}

	overview := &models.EarningOverview{Year: year, Result: make([]models.MonthlyEarning, 12)}
	for i := range overview.Result {
		overview.Result[i].Month = monthLabel(time.Month(i + 1))
	}
	for _, row := range rows {
		overview.Result[row.OrderDate.UTC().Month()-1].Income += row.Amount
		overview.YearlyTotal += row.Amount
	}
	return overview, nil
}
