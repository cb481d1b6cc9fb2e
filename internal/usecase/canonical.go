package usecase

import (
	"reflect"

	"alufab_quotes/internal/domain/entities"
)

// Canonical forms used for the save no-op check and for revision diffing.
// Derived state (hardware snapshots, the unknown-typology flag) and revision
// bookkeeping are stripped so only author-visible content is compared.

func canonicalHeader(h entities.QuotationHeader) entities.QuotationHeader {
	h.Revision = 0
	return h
}

func canonicalRow(r entities.QuotationRow) entities.QuotationRow {
	r.HardwareDetails = nil
	r.UnknownTypology = false
	return r
}

func canonicalRows(rows []entities.QuotationRow) []entities.QuotationRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]entities.QuotationRow, len(rows))
	for i, r := range rows {
		out[i] = canonicalRow(r)
	}
	return out
}

// sameQuotationContent reports whether two quotations carry identical
// author-visible content. Both sides are expected to have been priced by the
// same engine, so identical inputs yield identical computed strings.
func sameQuotationContent(a, b entities.Quotation) bool {
	return reflect.DeepEqual(canonicalHeader(a.Header), canonicalHeader(b.Header)) &&
		reflect.DeepEqual(canonicalRows(a.Rows), canonicalRows(b.Rows))
}
