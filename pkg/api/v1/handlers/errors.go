// Package handlers provides HTTP request handling
package handlers

// Common error messages
const (
	ErrMsgInvalidParams    = "Invalid parameters"
	ErrMsgInvalidReqBody   = "Invalid request body"
	ErrMsgInvalidID        = "Invalid id"
	ErrMsgInvalidFilter    = "Invalid filter"
	ErrMsgUnauthorized     = "Unauthorized"
	ErrMsgRouteNotFound    = "Route not found"
	ErrMsgInternalFailure  = "Internal server error"
	ErrMsgStatusRequired   = "Status is required"
	ErrMsgNameRequired     = "Name is required"
	ErrMsgInvalidEmail     = "Invalid email format"
	ErrMsgNegativePrice    = "Price must not be negative"
	ErrMsgNoFieldsToUpdate = "At least one field must be provided"
)

// Company error messages
const (
	ErrMsgCompanyNotFound     = "Company not found"
	ErrMsgCompanyListFailed   = "Failed to list companies"
	ErrMsgCompanyCreateFailed = "Failed to create company"
	ErrMsgCompanyUpdateFailed = "Failed to update company"
	ErrMsgCompanyDeleteFailed = "Failed to delete company"
	ErrMsgCompanyStatus       = "Invalid company status"
	ErrMsgCompanyGetFailed    = "Failed to get company"
)

// Employer error messages
const (
	ErrMsgEmployerNotFound    = "Employer not found"
	ErrMsgEmployerListFailed  = "Failed to list employers"
	ErrMsgEmployerBlockFailed = "Failed to update employer"
	ErrMsgEmployerActivate    = "Failed to activate employer"
)

// Order error messages
const (
	ErrMsgOrderNotFound     = "Order not found"
	ErrMsgOrderListFailed   = "Failed to list orders"
	ErrMsgOrderStatusFailed = "Failed to update order status"
	ErrMsgOrderStatus       = "Invalid order status"
)

// Menu error messages
const (
	ErrMsgMenuNotFound     = "Menu not found"
	ErrMsgMenuListFailed   = "Failed to list menus"
	ErrMsgMenuCreateFailed = "Failed to create menu"
	ErrMsgMenuDeleteFailed = "Failed to delete menu"
	ErrMsgMenuUpdateFailed = "Failed to update menu"
)

// Payment error messages
const (
	ErrMsgPaymentNotFound     = "Payment not found"
	ErrMsgPaymentListFailed   = "Failed to list payments"
	ErrMsgPaymentUpdateFailed = "Failed to update payment"
	ErrMsgPaymentStatus       = "Invalid payment status"
)

// Report error messages
const (
	ErrMsgReportNotFound     = "Report not found"
	ErrMsgReportListFailed   = "Failed to list reports"
	ErrMsgReportDeleteFailed = "Failed to delete report"
)

// Legal and stats error messages
const (
	ErrMsgLegalKind         = "Unknown legal document"
	ErrMsgLegalGetFailed    = "Failed to get legal document"
	ErrMsgLegalUpdateFailed = "Failed to update legal document"
	ErrMsgStatsFailed       = "Failed to compute stats"
	ErrMsgInvalidYear       = "Year must be a number between 1970 and 9999"
)

// Pagination error messages
const (
	ErrMsgNegativePagination = "Page must be a positive number from 1"
	ErrMsgNegativeLimit      = "Limit must be a positive number"
)
