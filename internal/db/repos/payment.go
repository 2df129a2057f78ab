package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

var paymentQuery = listQuery{
	searchColumns: []string{"company_name", "month"},
	filters: map[string]filterFunc{
		"status": enumFilter("status", models.ParsePaymentStatus),
		"month":  eqFilter("month"),
	},
	order: "month DESC, id DESC",
}

// PaymentRepository handles database operations for company payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// List returns one page of payments
func (r *PaymentRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Payment], error) {
	return paginate[models.Payment](ctx, r.db, paymentQuery, opts)
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.Status == "" {
		payment.Status = models.PaymentStatusUnpaid
	}
	return r.db.WithContext(ctx).Create(payment).Error
}

// UpdateStatus marks a payment paid or unpaid and returns the updated row
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uint, status models.PaymentStatus) (*models.Payment, error) {
	result := r.db.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("payment", id)
	}
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}
