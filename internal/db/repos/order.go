package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

var orderQuery = listQuery{
	searchColumns: []string{"order_number", "employee_name", "company_name", "menu_name"},
	filters: map[string]filterFunc{
		"status":  enumFilter("status", models.ParseOrderStatus),
		"date":    dayFilter("order_date"),
		"company": eqFilter("company_name"),
	},
	order: "order_date DESC, id DESC",
}

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns one page of orders
func (r *OrderRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Order], error) {
	return paginate[models.Order](ctx, r.db, orderQuery, opts)
}

// ListByCompany returns one page of the named company's orders
func (r *OrderRepository) ListByCompany(ctx context.Context, companyName string, opts *models.ListOptions) (*models.Page[models.Order], error) {
	return paginate[models.Order](ctx, r.db, orderQuery.scoped("company_name = ?", companyName), opts)
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	return r.db.WithContext(ctx).Create(order).Error
}

// UpdateStatus changes the status of an order and returns the updated row
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	result := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("order", id)
	}
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// CountByStatus returns the number of orders, restricted to status when it is not empty
func (r *OrderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err := tx.Count(&n).Error
	return n, err
}

// Earnings returns the summed amount of completed orders
func (r *OrderRepository) Earnings(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", models.OrderStatusComplete).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
