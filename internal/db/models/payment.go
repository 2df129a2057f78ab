package models

import (
	"fmt"
	"time"
)

// PaymentStatus represents whether a company settled its monthly bill
type PaymentStatus string

// Payment status constants
const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// Payment is a company's monthly bill
type Payment struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	CompanyName string        `json:"companyName" gorm:"not null;index"`
	Month       string        `json:"month" gorm:"not null;index"`
	TotalOrders int           `json:"totalOrders"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `json:"status" gorm:"not null;index"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ParsePaymentStatus converts a string to a PaymentStatus
func ParsePaymentStatus(str string) (PaymentStatus, error) {
	switch s := PaymentStatus(str); s {
	case PaymentStatusPaid, PaymentStatusUnpaid:
		return s, nil
	}
	return "", fmt.Errorf("invalid payment status: %s", str)
}
