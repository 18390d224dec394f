package rules

import (
	"strings"

	"ansimaq-erp-backend/internal/domain"
)

// NormalizeTaxID cleans a RUT-style identifier: dots, dashes and spaces are
// stripped, and the remainder must be purely numeric. Anything else fails
// validation before a write is attempted.
func NormalizeTaxID(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', ' ':
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return "", &domain.ValidationError{Field: "tax_id", Reason: "must not be empty"}
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", &domain.ValidationError{Field: "tax_id", Reason: "must contain only digits after removing separators"}
		}
	}
	return cleaned, nil
}
