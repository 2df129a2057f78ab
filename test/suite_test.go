package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunchdesk/lunchdesk/internal/db"
	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

func TestNewSuite(t *testing.T) {
	suite := NewSuite(t)
	defer suite.Cleanup()

	assert.Same(t, t, suite.T())
	assert.NotNil(t, suite.App, "app should be initialized")
	assert.NotNil(t, suite.Server, "server should be initialized")
	assert.NotNil(t, suite.APIClient, "API client should be initialized")
	assert.NotNil(t, suite.Store, "store should be initialized")
	assert.NotNil(t, suite.DB, "database should be initialized")
	assert.NotNil(t, suite.CompanyRepo, "company repository should be initialized")
	assert.NotNil(t, suite.OrderRepo, "order repository should be initialized")
	assert.NotNil(t, suite.Context(), "context should be set")

	health, err := suite.APIClient.HealthCheck(suite.Context())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
}

func TestSuite_Database(t *testing.T) {
	t.Run("empty by default", func(t *testing.T) {
		suite := NewSuite(t)
		defer suite.Cleanup()

		n, err := suite.CompanyRepo.Count(suite.Context())
		require.NoError(t, err)
		assert.Zero(t, n)

		company := &models.Company{Name: "Acme"}
		require.NoError(t, suite.CompanyRepo.Create(suite.Context(), company))
		assert.NotZero(t, company.ID)
	})

	t.Run("seeded", func(t *testing.T) {
		suite := NewSuite(t, WithSeed())
		defer suite.Cleanup()

		n, err := suite.CompanyRepo.Count(suite.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(db.SeedCounts.Companies), n)
	})
}

func TestSuite_Token(t *testing.T) {
	suite := NewSuite(t, WithToken("secret"))
	defer suite.Cleanup()

	assert.Equal(t, "secret", suite.Token)
	_, err := suite.APIClient.GetStats(suite.Context())
	assert.NoError(t, err, "suite client should send the token")
}

func TestSuite_Cleanup(t *testing.T) {
	t.Run("multiple cleanup calls", func(t *testing.T) {
		suite := NewSuite(t)

		suite.Cleanup()
		// Second cleanup should not panic
		suite.Cleanup()
	})

	t.Run("database cleanup", func(t *testing.T) {
		suite := NewSuite(t)

		sqlDB, err := suite.DB.DB()
		require.NoError(t, err)

		suite.Cleanup()

		err = sqlDB.Ping()
		assert.Error(t, err, "database connection should be closed")
	})

	t.Run("context canceled", func(t *testing.T) {
		suite := NewSuite(t)
		suite.Cleanup()
		assert.Error(t, suite.Context().Err())
	})

	t.Run("timeout", func(t *testing.T) {
		suite := NewSuite(t, WithTimeout(time.Minute))
		defer suite.Cleanup()
		deadline, ok := suite.Context().Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 10*time.Second)
	})

	t.Run("custom cleanup func", func(t *testing.T) {
		called := false
		suite := NewSuite(t, WithCleanupFunc(func() { called = true }))
		suite.Cleanup()
		assert.True(t, called)
	})
}
