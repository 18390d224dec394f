package rules

import (
	"time"

	"ansimaq-erp-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: "date", Reason: "expected yyyy-mm-dd"}
	}
	return t, nil
}

// ValidateDateRange checks both dates parse and end is not before start.
func ValidateDateRange(start, end string) error {
	s, err := ParseDate(start)
	if err != nil {
		return &domain.ValidationError{Field: "start_date", Reason: "expected yyyy-mm-dd"}
	}
	e, err := ParseDate(end)
	if err != nil {
		return &domain.ValidationError{Field: "end_date", Reason: "expected yyyy-mm-dd"}
	}
	if e.Before(s) {
		return &domain.ValidationError{Field: "end_date", Reason: "must not be before start_date"}
	}
	return nil
}

// IsActive reports whether a contract is vigente on the given day:
// start <= today <= end.
func IsActive(c *domain.Contract, today time.Time) bool {
	start, err := ParseDate(c.StartDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(c.EndDate)
	if err != nil {
		return false
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

// MonthsSpanned counts calendar months touched by a contract's date range,
// inclusive. Used for the guarded monthly-equivalent rollup.
func MonthsSpanned(startDate, endDate string) int {
	s, err := ParseDate(startDate)
	if err != nil {
		return 0
	}
	e, err := ParseDate(endDate)
	if err != nil || e.Before(s) {
		return 0
	}
	return (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month()) + 1
}
