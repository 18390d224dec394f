package rules

import (
	"ansimaq-erp-backend/internal/domain"
)

const folioSeqSpan = 100000 // folio = year*100000 + sequence, sequence resets per year

// NextFolio returns the next contract folio for the given calendar year:
// the year followed by a five-digit sequence that resets each year. The first
// folio of a year is <year>00000. Must be called inside the transaction that
// inserts the contract.
func NextFolio(year int, existing []int64) (int64, error) {
	if year < 1000 || year > 9999 {
		return 0, &domain.ValidationError{Field: "year", Reason: "must be a four-digit year"}
	}
	maxSeq := int64(-1)
	for _, f := range existing {
		if int(f/folioSeqSpan) != year {
			continue
		}
		if seq := f % folioSeqSpan; seq > maxSeq {
			maxSeq = seq
		}
	}
	next := maxSeq + 1
	if next >= folioSeqSpan {
		return 0, &domain.ValidationError{Field: "folio", Reason: "sequence exhausted for year"}
	}
	return int64(year)*folioSeqSpan + next, nil
}

// FolioYear extracts the calendar year a folio was issued in.
func FolioYear(folio int64) int {
	return int(folio / folioSeqSpan)
}
