package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

var menuQuery = listQuery{
	searchColumns: []string{"name", "description", "category"},
	filters: map[string]filterFunc{
		"category":  eqFilter("category"),
		"available": boolFilter("available"),
	},
	order: "created_at DESC, id DESC",
}

// MenuRepository handles database operations for menus
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// List returns one page of menus
func (r *MenuRepository) List(ctx context.Context, opts *models.ListOptions) (*models.Page[models.Menu], error) {
	return paginate[models.Menu](ctx, r.db, menuQuery, opts)
}

// Create creates a new menu
func (r *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

// Update applies changes, keyed by column, to a menu and returns the updated row.
// Zero values in changes are written.
func (r *MenuRepository) Update(ctx context.Context, id uint, changes map[string]any) (*models.Menu, error) {
	result := r.db.WithContext(ctx).Model(&models.Menu{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update menu: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, notFound("menu", id)
	}
	var menu models.Menu
	if err := r.db.WithContext(ctx).First(&menu, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return &menu, nil
}

// Delete deletes a menu
func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Menu{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("menu", id)
	}
	return nil
}

// Count returns the number of menus
func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Menu{}).Count(&n).Error
	return n, err
}
