package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ansimaq-erp-backend/internal/domain"
)

func TestNextFolioContinuesSequence(t *testing.T) {
	existing := []int64{202300000, 202300001}

	folio, err := NextFolio(2023, existing)
	require.NoError(t, err)
	assert.Equal(t, int64(202300002), folio)
}

func TestNextFolioResetsPerYear(t *testing.T) {
	// Folios from earlier years don't advance the new year's sequence.
	existing := []int64{202300000, 202300001}

	folio, err := NextFolio(2024, existing)
	require.NoError(t, err)
	assert.Equal(t, int64(202400000), folio)
}

func TestNextFolioEmptyYear(t *testing.T) {
	folio, err := NextFolio(2025, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(202500000), folio)
}

func TestNextFolioIgnoresGaps(t *testing.T) {
	// Deleted contracts leave holes; the sequence keeps counting from the max.
	existing := []int64{202400000, 202400005}

	folio, err := NextFolio(2024, existing)
	require.NoError(t, err)
	assert.Equal(t, int64(202400006), folio)
}

func TestNextFolioRejectsBadYear(t *testing.T) {
	var ve *domain.ValidationError

	_, err := NextFolio(999, nil)
	require.ErrorAs(t, err, &ve)

	_, err = NextFolio(10000, nil)
	require.ErrorAs(t, err, &ve)
}

func TestNextFolioSequenceExhausted(t *testing.T) {
	existing := []int64{202499999}

	_, err := NextFolio(2024, existing)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestFolioYear(t *testing.T) {
	assert.Equal(t, 2023, FolioYear(202300002))
	assert.Equal(t, 2024, FolioYear(202400000))
}
