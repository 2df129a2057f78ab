package models

import (
	"fmt"
	"time"
)

// CompanyStatus represents whether a company can place orders
type CompanyStatus string

// Company status constants
const (
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
)

// Company is a customer organization whose employees order lunch
type Company struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"not null;index"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address"`
	Status    CompanyStatus `json:"status" gorm:"not null;index"`
	CreatedAt time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ParseCompanyStatus converts a string to a CompanyStatus
func ParseCompanyStatus(str string) (CompanyStatus, error) {
	switch s := CompanyStatus(str); s {
	case CompanyStatusActive, CompanyStatusInactive:
		return s, nil
	}
	return "", fmt.Errorf("invalid company status: %s", str)
}

// CompanyDetails is a company together with its order and employer counts
type CompanyDetails struct {
	Company        Company `json:"company"`
	TotalOrder     int64   `json:"totalOrder"`
	TotalEmployers int64   `json:"totalEmployers"`
}
