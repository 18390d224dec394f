package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansimaq-erp-backend/internal/domain"
)

func TestNormalizeTaxID(t *testing.T) {
	got, err := NormalizeTaxID("12345678-9")
	require.NoError(t, err)
	assert.Equal(t, "123456789", got)

	got, err = NormalizeTaxID("12.345.678-9")
	require.NoError(t, err)
	assert.Equal(t, "123456789", got)

	got, err = NormalizeTaxID(" 12 345 678 9 ")
	require.NoError(t, err)
	assert.Equal(t, "123456789", got)
}

func TestNormalizeTaxIDRejectsNonDigits(t *testing.T) {
	var ve *domain.ValidationError

	_, err := NormalizeTaxID("12A45678-9")
	require.ErrorAs(t, err, &ve)

	_, err = NormalizeTaxID("12345678-K")
	require.ErrorAs(t, err, &ve)
}

func TestNormalizeTaxIDRejectsEmpty(t *testing.T) {
	var ve *domain.ValidationError

	_, err := NormalizeTaxID("")
	require.ErrorAs(t, err, &ve)

	_, err = NormalizeTaxID(".-. ")
	require.ErrorAs(t, err, &ve)
}
