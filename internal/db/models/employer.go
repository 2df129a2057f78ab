package models

import (
	"fmt"
	"time"
)

// EmployerStatus represents the approval state of an employer account
type EmployerStatus string

// Employer status constants
const (
	EmployerStatusPending EmployerStatus = "pending"
	EmployerStatusActive  EmployerStatus = "active"
)

// Employer is a company-side user account that manages employee orders
type Employer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;index"`
	Email       string         `json:"email" gorm:"not null;unique"`
	CompanyName string         `json:"companyName" gorm:"index"`
	Status      EmployerStatus `json:"status" gorm:"not null;index"`
	Blocked     bool           `json:"isBlocked" gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"index"`
}

// ParseEmployerStatus converts a string to an EmployerStatus
func ParseEmployerStatus(str string) (EmployerStatus, error) {
	switch s := EmployerStatus(str); s {
	case EmployerStatusPending, EmployerStatusActive:
		return s, nil
	}
	return "", fmt.Errorf("invalid employer status: %s", str)
}
