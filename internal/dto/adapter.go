// Package dto holds the UI-facing entity shapes and the bidirectional
// adapters between them and the wire model. The UI side is flat and
// string-formatted: decimals become their canonical string form, optional
// scalars become empty strings, relation slots become plain id lists and
// dates render as fixed-width MM/DD/YYYY.
//
// Conversions round-trip exactly, with one documented exception: time-of-day
// is dropped on the UI side, so a wire datetime below whole-day precision
// cannot be reconstructed.
package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stocklink/internal/apierror"
)

// dateLayout is the fixed-width display form of all dates.
const dateLayout = "01/02/2006"

// unwrapIDs flattens a wire relation list into plain ids. The wire schema
// permits an empty slot; the service is never expected to send one, so an
// empty slot is reported as a decode failure rather than a crash.
func unwrapIDs(op string, slots []*int64) ([]int64, error) {
	ids := make([]int64, 0, len(slots))
	for i, slot := range slots {
		if slot == nil {
			return nil, apierror.New(apierror.Decode, op, fmt.Sprintf("empty product slot at index %d", i))
		}
		ids = append(ids, *slot)
	}
	return ids, nil
}

func wrapIDs(ids []int64) []*int64 {
	slots := make([]*int64, 0, len(ids))
	for i := range ids {
		id := ids[i]
		slots = append(slots, &id)
	}
	return slots
}

// formatDecimal renders a decimal at its wire scale: a value received as
// 1.50 displays as "1.50", not "1.5". Decimal.String trims trailing zeros,
// which would make the display form lossy about scale.
func formatDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

// parseDecimal converts a UI price string back into an exact decimal.
func parseDecimal(op, field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &apierror.Error{
			Kind:   apierror.Parse,
			Op:     op,
			Detail: fmt.Sprintf("%s %q is not a valid decimal", field, s),
			Err:    err,
		}
	}
	return d, nil
}

// parseDate parses MM/DD/YYYY and pins the time-of-day to midnight.
func parseDate(op, field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &apierror.Error{
			Kind:   apierror.Parse,
			Op:     op,
			Detail: fmt.Sprintf("%s %q is not a MM/DD/YYYY date", field, s),
			Err:    err,
		}
	}
	return t, nil
}

// stringOrEmpty flattens an optional wire string for display.
func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// emptyAsAbsent is the inverse convention: an empty UI string means the
// field is absent on the wire.
func emptyAsAbsent(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
