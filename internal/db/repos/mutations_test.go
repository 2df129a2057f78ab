package repos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

type MutationsTestSuite struct {
	DBRepositoryTestSuite
}

func TestMutations(t *testing.T) {
	suite.Run(t, new(MutationsTestSuite))
}

func (s *MutationsTestSuite) TestBlockEmployer() {
	e := &models.Employer{Name: "Riley", Email: "riley@example.com", CompanyName: "Acme"}
	s.Require().NoError(s.employerRepo.Create(s.ctx, e))
	s.Equal(models.EmployerStatusPending, e.Status)

	got, err := s.employerRepo.SetBlocked(s.ctx, e.ID, true)
	s.Require().NoError(err)
	s.True(got.Blocked)

	opts := models.NewListOptions(1, 10)
	opts.Filters["isBlocked"] = "true"
	page, err := s.employerRepo.List(s.ctx, opts)
	s.Require().NoError(err)
	s.Len(page.Rows, 1)

	_, err = s.employerRepo.SetBlocked(s.ctx, 77, true)
	s.Error(err)
}

func (s *MutationsTestSuite) TestActivateEmployer() {
	e := &models.Employer{Name: "Quinn", Email: "quinn@example.com", CompanyName: "Acme"}
	s.Require().NoError(s.employerRepo.Create(s.ctx, e))

	got, err := s.employerRepo.SetStatus(s.ctx, e.ID, models.EmployerStatusActive)
	s.Require().NoError(err)
	s.Equal(models.EmployerStatusActive, got.Status)

	opts := models.NewListOptions(1, 10)
	opts.Filters["status"] = "pending"
	page, err := s.employerRepo.List(s.ctx, opts)
	s.Require().NoError(err)
	s.Empty(page.Rows)

	_, err = s.employerRepo.SetStatus(s.ctx, 77, models.EmployerStatusActive)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *MutationsTestSuite) TestMenuUpdateWritesZeroValues() {
	m := &models.Menu{Name: "Pasta", Category: "continental", Price: 220, Available: true}
	s.Require().NoError(s.menuRepo.Create(s.ctx, m))

	got, err := s.menuRepo.Update(s.ctx, m.ID, map[string]any{"available": false, "price": 0.0})
	s.Require().NoError(err)
	s.False(got.Available)
	s.Zero(got.Price)
	s.Equal("Pasta", got.Name)

	_, err = s.menuRepo.Update(s.ctx, 404, map[string]any{"name": "x"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *MutationsTestSuite) TestOrderStatus() {
	o := s.createTestOrder("ORD-9", models.OrderStatusPending, testEpoch)

	got, err := s.orderRepo.UpdateStatus(s.ctx, o.ID, models.OrderStatusCancel)
	s.Require().NoError(err)
	s.Equal(models.OrderStatusCancel, got.Status)

	_, err = s.orderRepo.UpdateStatus(s.ctx, 1234, models.OrderStatusCancel)
	s.Error(err)
}

func (s *MutationsTestSuite) TestMenuCreateDelete() {
	m := &models.Menu{Name: "Pasta", Category: "continental", Price: 220, Available: true}
	s.Require().NoError(s.menuRepo.Create(s.ctx, m))

	opts := models.NewListOptions(1, 10)
	opts.Filters["category"] = "continental"
	page, err := s.menuRepo.List(s.ctx, opts)
	s.Require().NoError(err)
	s.Len(page.Rows, 1)

	s.Require().NoError(s.menuRepo.Delete(s.ctx, m.ID))
	s.Error(s.menuRepo.Delete(s.ctx, m.ID))
}

func (s *MutationsTestSuite) TestPaymentStatus() {
	p := &models.Payment{CompanyName: "Acme", Month: "2024-03", TotalOrders: 3, Amount: 450}
	s.Require().NoError(s.paymentRepo.Create(s.ctx, p))
	s.Equal(models.PaymentStatusUnpaid, p.Status)

	got, err := s.paymentRepo.UpdateStatus(s.ctx, p.ID, models.PaymentStatusPaid)
	s.Require().NoError(err)
	s.Equal(models.PaymentStatusPaid, got.Status)
}

func (s *MutationsTestSuite) TestReportDelete() {
	r := &models.Report{ReporterName: "Sam", Subject: "Cold rice", CreatedAt: testEpoch}
	s.Require().NoError(s.reportRepo.Create(s.ctx, r))

	opts := models.NewListOptions(1, 10)
	opts.Filters["date"] = "March 1, 2024"
	page, err := s.reportRepo.List(s.ctx, opts)
	s.Require().NoError(err)
	s.Len(page.Rows, 1)

	s.Require().NoError(s.reportRepo.Delete(s.ctx, r.ID))
	s.Error(s.reportRepo.Delete(s.ctx, r.ID))
}

func (s *MutationsTestSuite) TestLegalUpsert() {
	doc, err := s.legalRepo.Get(s.ctx, models.LegalKindTerms)
	s.Require().NoError(err)
	s.Empty(doc.Content)

	doc, err = s.legalRepo.Upsert(s.ctx, models.LegalKindTerms, "<p>v1</p>")
	s.Require().NoError(err)
	s.Equal("<p>v1</p>", doc.Content)

	doc, err = s.legalRepo.Upsert(s.ctx, models.LegalKindTerms, "<p>v2</p>")
	s.Require().NoError(err)
	s.Equal("<p>v2</p>", doc.Content)
}

func (s *MutationsTestSuite) TestStats() {
	s.createTestCompanies(2)
	s.createTestOrder("ORD-1", models.OrderStatusPending, testEpoch)
	s.createTestOrder("ORD-2", models.OrderStatusComplete, testEpoch)
	s.createTestOrder("ORD-3", models.OrderStatusComplete, testEpoch)

	stats, err := s.statsRepo.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), stats.TotalCompanies)
	s.Equal(int64(3), stats.TotalOrders)
	s.Equal(int64(1), stats.PendingOrders)
	s.InDelta(300.0, stats.TotalEarnings, 0.001)
}

func (s *MutationsTestSuite) TestOverviews() {
	for i, created := range []time.Time{testEpoch, testEpoch.AddDate(0, 0, 1), testEpoch.AddDate(0, 2, 0), testEpoch.AddDate(1, 0, 0)} {
		e := &models.Employer{Name: "E", Email: string(rune('a'+i)) + "@example.com", CreatedAt: created}
		s.Require().NoError(s.employerRepo.Create(s.ctx, e))
	}
	s.createTestOrder("ORD-1", models.OrderStatusComplete, testEpoch)
	s.createTestOrder("ORD-2", models.OrderStatusComplete, testEpoch.AddDate(0, 1, 0))
	s.createTestOrder("ORD-3", models.OrderStatusPending, testEpoch)
	s.createTestOrder("ORD-4", models.OrderStatusComplete, testEpoch.AddDate(-1, 0, 0))

	users, err := s.statsRepo.UserOverview(s.ctx, 2024)
	s.Require().NoError(err)
	s.Equal(2024, users.Year)
	s.Require().Len(users.Result, 12)
	s.Equal("Jan", users.Result[0].Month)
	s.Equal(models.MonthlyUsers{Month: "Mar", Users: 2}, users.Result[2])
	s.Equal(models.MonthlyUsers{Month: "May", Users: 1}, users.Result[4])

	earnings, err := s.statsRepo.EarningOverview(s.ctx, 2024)
	s.Require().NoError(err)
	s.Require().Len(earnings.Result, 12)
	s.InDelta(150.0, earnings.Result[2].Income, 0.001)
	s.InDelta(150.0, earnings.Result[3].Income, 0.001)
	s.InDelta(300.0, earnings.YearlyTotal, 0.001)

	empty, err := s.statsRepo.EarningOverview(s.ctx, 1999)
	s.Require().NoError(err)
	s.Len(empty.Result, 12)
	s.Zero(empty.YearlyTotal)
}
