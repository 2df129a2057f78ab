package models

import (
	"fmt"
	"time"
)

// LegalKind identifies one of the legal pages edited from the dashboard
type LegalKind string

// Legal page kinds
const (
	LegalKindAbout   LegalKind = "about"
	LegalKindTerms   LegalKind = "terms"
	LegalKindPrivacy LegalKind = "privacy"
)

// LegalDocument is the rich-text content of a legal page
type LegalDocument struct {
	Kind      LegalKind `json:"kind" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ParseLegalKind converts a string to a LegalKind
func ParseLegalKind(str string) (LegalKind, error) {
	switch k := LegalKind(str); k {
	case LegalKindAbout, LegalKindTerms, LegalKindPrivacy:
		return k, nil
	}
	return "", fmt.Errorf("invalid legal document kind: %s", str)
}
