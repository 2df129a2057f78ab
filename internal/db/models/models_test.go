package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewListOptions(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
		offset        int
	}{
		{name: "defaults", page: 0, limit: 0, expectedPage: 1, expectedLimit: DefaultLimit, offset: 0},
		{name: "second page", page: 2, limit: 10, expectedPage: 2, expectedLimit: 10, offset: 10},
		{name: "limit capped", page: 3, limit: 1000, expectedPage: 3, expectedLimit: MaxLimit, offset: 200},
		{name: "negative page", page: -4, limit: 5, expectedPage: 1, expectedLimit: 5, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewListOptions(tt.page, tt.limit)
			assert.Equal(t, tt.expectedPage, opts.Page)
			assert.Equal(t, tt.expectedLimit, opts.Limit)
			assert.Equal(t, tt.offset, opts.Offset())
			assert.NotNil(t, opts.Filters)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 4, TotalPages(31, 10))
	assert.Equal(t, 1, TotalPages(31, 0))
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseOrderStatus("complete")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusComplete, s)

	_, err = ParseOrderStatus("shipped")
	assert.EqualError(t, err, "invalid order status: shipped")

	_, err = ParseCompanyStatus("active")
	assert.NoError(t, err)
	_, err = ParseEmployerStatus("blocked")
	assert.Error(t, err)
	_, err = ParsePaymentStatus("paid")
	assert.NoError(t, err)

	k, err := ParseLegalKind("privacy")
	assert.NoError(t, err)
	assert.Equal(t, LegalKindPrivacy, k)
	_, err = ParseLegalKind("cookies")
	assert.Error(t, err)
}
