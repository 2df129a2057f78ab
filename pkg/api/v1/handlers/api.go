package handlers

import (
	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/repos"
)

// APIHandler is a handler for the API
type APIHandler struct {
	companies *repos.CompanyRepository
	employers *repos.EmployerRepository
	orders    *repos.OrderRepository
	menus     *repos.MenuRepository
	payments  *repos.PaymentRepository
	reports   *repos.ReportRepository
	legal     *repos.LegalRepository
	stats     *repos.StatsRepository
}

// NewAPIHandler creates a new API handler over the given database
func NewAPIHandler(db *gorm.DB) *APIHandler {
	return &APIHandler{
		companies: repos.NewCompanyRepository(db),
		employers: repos.NewEmployerRepository(db),
		orders:    repos.NewOrderRepository(db),
		menus:     repos.NewMenuRepository(db),
		payments:  repos.NewPaymentRepository(db),
		reports:   repos.NewReportRepository(db),
		legal:     repos.NewLegalRepository(db),
		stats:     repos.NewStatsRepository(db),
	}
}
