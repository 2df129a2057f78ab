// Package models exposes the dashboard entities to API consumers.
// It aliases the internal definitions so the client and CLI share one set of wire types.
package models

import (
	internalmodels "github.com/lunchdesk/lunchdesk/internal/db/models"
)

const (
	// DefaultLimit is the page size used when a list request does not send one
	DefaultLimit = internalmodels.DefaultLimit
	// MaxLimit is the largest page size a list request may ask for
	MaxLimit = internalmodels.MaxLimit
)

// Type Aliases

// Company is a customer organization whose employees order lunch
type Company = internalmodels.Company

// CompanyDetails is a company together with its order and employer counts
type CompanyDetails = internalmodels.CompanyDetails

// CompanyStatus represents whether a company can place orders
type CompanyStatus = internalmodels.CompanyStatus

// Employer is a company-side user account
type Employer = internalmodels.Employer

// EmployerStatus represents the approval state of an employer account
type EmployerStatus = internalmodels.EmployerStatus

// Order is a lunch order
type Order = internalmodels.Order

// OrderStatus represents the fulfilment state of an order
type OrderStatus = internalmodels.OrderStatus

// Menu is a dish offered to companies
type Menu = internalmodels.Menu

// Payment is a company's monthly bill
type Payment = internalmodels.Payment

// PaymentStatus represents whether a bill was settled
type PaymentStatus = internalmodels.PaymentStatus

// Report is a complaint or feedback message
type Report = internalmodels.Report

// LegalDocument is the content of a legal page
type LegalDocument = internalmodels.LegalDocument

// LegalKind identifies a legal page
type LegalKind = internalmodels.LegalKind

// Stats are the dashboard counters
type Stats = internalmodels.Stats

// UserOverview is the monthly sign-up chart of one year
type UserOverview = internalmodels.UserOverview

// EarningOverview is the monthly income chart of one year
type EarningOverview = internalmodels.EarningOverview

// Constant Aliases
const (
	CompanyStatusActive   = internalmodels.CompanyStatusActive
	CompanyStatusInactive = internalmodels.CompanyStatusInactive

	EmployerStatusPending = internalmodels.EmployerStatusPending
	EmployerStatusActive  = internalmodels.EmployerStatusActive

	OrderStatusPending  = internalmodels.OrderStatusPending
	OrderStatusComplete = internalmodels.OrderStatusComplete
	OrderStatusCancel   = internalmodels.OrderStatusCancel

	PaymentStatusPaid   = internalmodels.PaymentStatusPaid
	PaymentStatusUnpaid = internalmodels.PaymentStatusUnpaid

	LegalKindAbout   = internalmodels.LegalKindAbout
	LegalKindTerms   = internalmodels.LegalKindTerms
	LegalKindPrivacy = internalmodels.LegalKindPrivacy
)

// Function Aliases (assigned from internal package)
var (
	ParseCompanyStatus = internalmodels.ParseCompanyStatus
	ParseOrderStatus   = internalmodels.ParseOrderStatus
	ParsePaymentStatus = internalmodels.ParsePaymentStatus
	ParseLegalKind     = internalmodels.ParseLegalKind
)
