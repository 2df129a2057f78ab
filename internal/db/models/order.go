package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

// Order status constants
const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusComplete OrderStatus = "complete"
	OrderStatusCancel   OrderStatus = "cancel"
)

// OrderStatuses lists every valid order status
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusComplete, OrderStatusCancel}

// Order is a lunch order placed by a company employee
type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	OrderNumber  string      `json:"orderNumber" gorm:"not null;unique"`
	EmployeeName string      `json:"employeeName" gorm:"index"`
	CompanyName  string      `json:"companyName" gorm:"index"`
	MenuName     string      `json:"menuName"`
	Quantity     int         `json:"quantity"`
	Amount       float64     `json:"amount"`
	Status       OrderStatus `json:"status" gorm:"not null;index"`
	OrderDate    time.Time   `json:"orderDate" gorm:"index"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// ParseOrderStatus converts a string to an OrderStatus
func ParseOrderStatus(str string) (OrderStatus, error) {
	for _, s := range OrderStatuses {
		if string(s) == str {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid order status: %s", str)
}
