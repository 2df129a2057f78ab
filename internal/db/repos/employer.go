package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

var employerQuery = listQuery{
	searchColumns: []string{"name", "email", "company_name"},
	filters: map[string]filterFunc{
		"status":    enumFilter("status", models.ParseEmployerStatus),
		"isBlocked": boolFilter("blocked"),
		"company":   eqFilter("company_name"),
	},
	order: "created_at DESC, id DESC",
}

// EmployerRepository handles database operations for employer accounts
type EmployerRepository struct {
	db *gorm.DB
}

// NewEmployerRepository creates a new employer repository
func NewEmployerRepository(db *gorm.DB) *EmployerRepository {
	return &EmployerRepository{db: db}
}

// List returns one page of employers
func (r *EmployerRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Employer], error) {
	return paginate[models.Employer](ctx, r.db, employerQuery, opts)
}

// Create creates a new employer
func (r *EmployerRepository) Create(ctx context.Context, employer *models.Employer) error {
	if employer.Status == "" {
		employer.Status = models.EmployerStatusPending
	}
	return r.db.WithContext(ctx).Create(employer).Error
}

// SetBlocked blocks or unblocks an employer and returns the updated row
func (r *EmployerRepository) SetBlocked(ctx context.Context, id uint, blocked bool) (*models.Employer, error) {
	result := r.db.WithContext(ctx).Model(&models.Employer{}).Where("id = ?", id).Update("blocked", blocked)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update employer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("employer", id)
	}
	var employer models.Employer
	if err := r.db.WithContext(ctx).First(&employer, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	return &employer, nil
}

// SetStatus changes the approval state of an employer and returns the updated row
func (r *EmployerRepository) SetStatus(ctx context.Context, id uint, status models.EmployerStatus) (*models.Employer, error) {
	result := r.db.WithContext(ctx).Model(&models.Employer{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update employer status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("employer", id)
	}
	var employer models.Employer
	if err := r.db.WithContext(ctx).First(&employer, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get employer: %w", err)
	}
	return &employer, nil
}

// Count returns the number of employers
func (r *EmployerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Employer{}).Count(&n).Error
	return n, err
}
