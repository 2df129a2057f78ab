package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

var companyQuery = listQuery{
	searchColumns: []string{"name", "email", "address"},
	filters: map[string]filterFunc{
		"status": enumFilter("status", models.ParseCompanyStatus),
	},
	order: "created_at DESC, id DESC",
}

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// List returns one page of companies
func (r *CompanyRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Company], error) {
	return paginate[models.Company](ctx, r.db, companyQuery, opts)
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	if company.Status == "" {
		company.Status = models.CompanyStatusActive
	}
	return r.db.WithContext(ctx).Create(company).Error
}

// GetByID retrieves a company by its ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("company", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// Details returns a company with the number of orders and employers filed under its name
func (r *CompanyRepository) Details(ctx context.Context, id uint) (*models.CompanyDetails, error) {
	company, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &models.CompanyDetails{Company: *company}
	err = r.db.WithContext(ctx).Model(&models.Order{}).
		Where("company_name = ?", company.Name).
		Count(&details.TotalOrder).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count company orders: %w", err)
	}
	err = r.db.WithContext(ctx).Model(&models.Employer{}).
		Where("company_name = ?", company.Name).
		Count(&details.TotalEmployers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count company employers: %w", err)
	}
	return details, nil
}

// Update applies the non-zero fields of update to the company with the given ID
func (r *CompanyRepository) Update(ctx context.Context, id uint, update *models.Company) (*models.Company, error) {
	company, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(company).Updates(update).Error; err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete deletes a company
func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Company{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("company", id)
	}
	return nil
}

// Count returns the number of companies
func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).Count(&n).Error
	return n, err
}
