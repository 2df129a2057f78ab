package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// LegalRepository handles database operations for legal pages
type LegalRepository struct {
	db *gorm.DB
}

// NewLegalRepository creates a new legal page repository
func NewLegalRepository(db *gorm.DB) *LegalRepository {
	return &LegalRepository{db: db}
}

// Get returns the document of the given kind, an empty document when none was saved yet
func (r *LegalRepository) Get(ctx context.Context, kind models.LegalKind) (*models.LegalDocument, error) {
	var doc models.LegalDocument
	err := r.db.WithContext(ctx).Where("kind = ?", kind).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.LegalDocument{Kind: kind}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get legal document: %w", err)
	}
	return &doc, nil
}

// Upsert replaces the content of the document of the given kind
func (r *LegalRepository) Upsert(ctx context.Context, kind models.LegalKind, content string) (*models.LegalDocument, error) {
	doc := &models.LegalDocument{Kind: kind, Content: content}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(doc).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save legal document: %w", err)
	}
	return r.Get(ctx, kind)
}
