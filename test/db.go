package test

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/lunchdesk/lunchdesk/internal/db"
	"github.com/lunchdesk/lunchdesk/internal/db/repos"
)

// NewFileBasedTestDB creates a new migrated file-based SQLite database for testing.
// It returns the database connection and the path to the temporary directory.
func NewFileBasedTestDB() (*gorm.DB, string, error) {
	tmpDir, err := os.MkdirTemp("", "lunchdesk_test")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	dbPath := filepath.Join(tmpDir, "lunchdesk_test.db")
	conn, err := db.New(db.Options{DSN: dbPath})
	if err != nil {
		// Try to clean up the temporary directory, but don't fail if cleanup fails
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			fmt.Printf("Warning: failed to remove temporary directory after database error: %v\n", rmErr)
		}
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	return conn, tmpDir, nil
}

// CleanupTestDB closes the database connection and removes the temporary directory.
func CleanupTestDB(conn *gorm.DB, tmpDir string) {
	sqlDB, err := conn.DB()
	if err == nil && sqlDB != nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			fmt.Printf("Error closing database connection: %v\n", closeErr)
		}
	}
	if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
		fmt.Printf("Error removing temporary directory: %v\n", rmErr)
	}
}

// SetupTestDB configures the test suite to use the provided database connection.
// If nil is provided, a new file-based database will be created.
func SetupTestDB(suite *Suite, database *gorm.DB) {
	if database != nil {
		suite.DB = database
	} else {
		dbConn, tmpDir, err := NewFileBasedTestDB()
		suite.Require().NoError(err, "Failed to create file-based database")
		suite.DB = dbConn

		oldCleanup := suite.cleanup
		suite.cleanup = func() {
			if oldCleanup != nil {
				oldCleanup()
			}
			// Close database connection and remove temporary directory
			CleanupTestDB(suite.DB, tmpDir)
		}
	}

	suite.CompanyRepo = repos.NewCompanyRepository(suite.DB)
	suite.EmployerRepo = repos.NewEmployerRepository(suite.DB)
	suite.OrderRepo = repos.NewOrderRepository(suite.DB)
	suite.MenuRepo = repos.NewMenuRepository(suite.DB)
	suite.PaymentRepo = repos.NewPaymentRepository(suite.DB)
	suite.ReportRepo = repos.NewReportRepository(suite.DB)
	suite.LegalRepo = repos.NewLegalRepository(suite.DB)
}
