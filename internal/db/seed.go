package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
	"github.com/lunchdesk/lunchdesk/internal/logger"
)

// SeedCounts is the number of rows Seed creates per table
var SeedCounts = struct {
	Companies, Employers, Orders, Menus, Payments, Reports int
}{
	Companies: 25,
	Employers: 30,
	Orders:    45,
	Menus:     12,
	Payments:  15,
	Reports:   8,
}

// SeedEpoch is the order date of the first seeded order, each next order is one day later
var SeedEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

var (
	seedCompanyNames = []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli"}
	seedDishes       = []string{"Chicken Biryani", "Beef Tehari", "Veg Khichuri", "Fish Curry", "Fried Rice", "Pasta"}
	seedCategories   = []string{"rice", "curry", "continental"}
)

// Seed fills an empty database with deterministic fixture rows.
// It does nothing when companies already exist.
func Seed(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Company{}).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check existing rows: %w", err)
	}
	if n > 0 {
		logger.Debugf("database already seeded with %d companies", n)
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		companies := make([]models.Company, SeedCounts.Companies)
		for i := range companies {
			status := models.CompanyStatusActive
			if i%5 == 4 {
				status = models.CompanyStatusInactive
			}
			companies[i] = models.Company{
				Name:      fmt.Sprintf("%s %02d", seedCompanyNames[i%len(seedCompanyNames)], i+1),
				Email:     fmt.Sprintf("contact%02d@company.test", i+1),
				Phone:     fmt.Sprintf("+8801700000%03d", i+1),
				Address:   fmt.Sprintf("%d Lake Road", i+1),
				Status:    status,
				CreatedAt: SeedEpoch.Add(time.Duration(i) * time.Hour),
			}
		}
		if err := tx.Create(&companies).Error; err != nil {
			return err
		}

		employers := make([]models.Employer, SeedCounts.Employers)
		for i := range employers {
			status := models.EmployerStatusActive
			if i%3 == 0 {
				status = models.EmployerStatusPending
			}
			employers[i] = models.Employer{
				Name:        fmt.Sprintf("Employer %02d", i+1),
				Email:       fmt.Sprintf("employer%02d@company.test", i+1),
				CompanyName: companies[i%len(companies)].Name,
				Status:      status,
				Blocked:     i%7 == 6,
				CreatedAt:   SeedEpoch.Add(time.Duration(i) * time.Hour),
			}
		}
		if err := tx.Create(&employers).Error; err != nil {
			return err
		}

		orders := make([]models.Order, SeedCounts.Orders)
		for i := range orders {
			qty := i%3 + 1
			orders[i] = models.Order{
				OrderNumber:  fmt.Sprintf("ORD-%04d", i+1),
				EmployeeName: fmt.Sprintf("Employee %02d", i%20+1),
				CompanyName:  companies[i%len(companies)].Name,
				MenuName:     seedDishes[i%len(seedDishes)],
				Quantity:     qty,
				Amount:       float64(qty) * 150,
				Status:       models.OrderStatuses[i%len(models.OrderStatuses)],
				OrderDate:    SeedEpoch.AddDate(0, 0, i),
				CreatedAt:    SeedEpoch.AddDate(0, 0, i),
			}
		}
		if err := tx.Create(&orders).Error; err != nil {
			return err
		}

		menus := make([]models.Menu, SeedCounts.Menus)
		for i := range menus {
			menus[i] = models.Menu{
				Name:        fmt.Sprintf("%s %d", seedDishes[i%len(seedDishes)], i/len(seedDishes)+1),
				Description: "Served with salad",
				Category:    seedCategories[i%len(seedCategories)],
				Price:       float64(120 + 10*i),
				Available:   i%4 != 3,
				CreatedAt:   SeedEpoch.Add(time.Duration(i) * time.Hour),
			}
		}
		if err := tx.Create(&menus).Error; err != nil {
			return err
		}

		payments := make([]models.Payment, SeedCounts.Payments)
		for i := range payments {
			status := models.PaymentStatusPaid
			if i%2 == 1 {
				status = models.PaymentStatusUnpaid
			}
			payments[i] = models.Payment{
				CompanyName: companies[i%len(companies)].Name,
				Month:       SeedEpoch.AddDate(0, -(i % 3), 0).Format("2006-01"),
				TotalOrders: 10 + i,
				Amount:      float64(10+i) * 150,
				Status:      status,
			}
		}
		if err := tx.Create(&payments).Error; err != nil {
			return err
		}

		reports := make([]models.Report, SeedCounts.Reports)
		for i := range reports {
			reports[i] = models.Report{
				ReporterName: fmt.Sprintf("Employee %02d", i+1),
				Subject:      fmt.Sprintf("Late delivery #%d", i+1),
				Message:      "The lunch arrived after the break ended.",
				CreatedAt:    SeedEpoch.AddDate(0, 0, i),
			}
		}
		if err := tx.Create(&reports).Error; err != nil {
			return err
		}

		docs := []models.LegalDocument{
			{Kind: models.LegalKindAbout, Content: "<p>Company lunches, delivered.</p>"},
			{Kind: models.LegalKindTerms, Content: "<p>Orders close at 10:00.</p>"},
			{Kind: models.LegalKindPrivacy, Content: "<p>We store the data needed to deliver orders.</p>"},
		}
		return tx.Create(&docs).Error
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	logger.InfoWithFields("database seeded", map[string]interface{}{
		"companies": SeedCounts.Companies,
		"orders":    SeedCounts.Orders,
	})
	return nil
}
