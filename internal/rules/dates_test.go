package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansimaq-erp-backend/internal/domain"
)

func TestValidateDateRange(t *testing.T) {
	require.NoError(t, ValidateDateRange("2024-01-01", "2024-06-30"))
	require.NoError(t, ValidateDateRange("2024-01-01", "2024-01-01"))

	var ve *domain.ValidationError
	err := ValidateDateRange("2024-06-30", "2024-01-01")
	require.ErrorAs(t, err, &ve)

	err = ValidateDateRange("not-a-date", "2024-01-01")
	require.ErrorAs(t, err, &ve)
}

func TestIsActive(t *testing.T) {
	c := &domain.Contract{StartDate: "2024-01-01", EndDate: "2024-06-30"}

	assert.True(t, IsActive(c, time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)))
	assert.True(t, IsActive(c, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsActive(c, time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, IsActive(c, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsActive(c, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestIsActiveIndefinite(t *testing.T) {
	c := &domain.Contract{StartDate: "2020-05-01", EndDate: domain.IndefiniteEndDate}

	assert.True(t, IsActive(c, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
}

func TestMonthsSpanned(t *testing.T) {
	assert.Equal(t, 1, MonthsSpanned("2024-01-01", "2024-01-31"))
	assert.Equal(t, 6, MonthsSpanned("2024-01-15", "2024-06-02"))
	assert.Equal(t, 13, MonthsSpanned("2023-06-01", "2024-06-30"))
	assert.Zero(t, MonthsSpanned("2024-06-30", "2024-01-01"))
	assert.Zero(t, MonthsSpanned("bad", "2024-01-01"))
}
