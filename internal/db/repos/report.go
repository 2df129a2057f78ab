package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

var reportQuery = listQuery{
	searchColumns: []string{"reporter_name", "subject", "message"},
	filters: map[string]filterFunc{
		"date": dayFilter("created_at"),
	},
	order: "created_at DESC, id DESC",
}

// ReportRepository handles database operations for user reports
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// List returns one page of reports
func (r *ReportRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Report], error) {
	return paginate[models.Report](ctx, r.db, reportQuery, opts)
}

// Create creates a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// Delete deletes a report
func (r *ReportRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Report{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("report", id)
	}
	return nil
}
