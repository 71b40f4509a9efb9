// Package normalize turns loosely-typed request input into canonical scalars.
// All functions are pure, never panic and never return an error: bad input
// degrades to nil (or zero, for the ledger/line-item variants) and the caller
// decides whether that constitutes a validation failure.
package normalize

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Text trims v and returns it, or nil when v is absent or blank.
func Text(v any) *string {
	if v == nil {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case *string:
		if t == nil {
			return nil
		}
		s = *t
	default:
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Number parses v into a decimal, or returns nil when v is absent, blank or
// not a finite number. String input follows the decimal-comma convention:
// "1.234,56" parses as 1234.56.
func Number(v any) *decimal.Decimal {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case decimal.Decimal:
		return &t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		d := decimal.NewFromFloat(t)
		return &d
	case float32:
		return Number(float64(t))
	case int:
		d := decimal.NewFromInt(int64(t))
		return &d
	case int64:
		d := decimal.NewFromInt(t)
		return &d
	case json.Number:
		return parseDecimalString(t.String())
	case string:
		return parseDecimalString(t)
	case *string:
		if t == nil {
			return nil
		}
		return parseDecimalString(*t)
	default:
		return nil
	}
}

// NumberOrZero is Number degrading to zero instead of nil. Line-item and
// ledger contexts use this variant.
func NumberOrZero(v any) decimal.Decimal {
	if d := Number(v); d != nil {
		return *d
	}
	return decimal.Zero
}

// Enum trims v and returns it only if it belongs to the allowed set.
func Enum(v any, allowed ...string) *string {
	s := Text(v)
	if s == nil {
		return nil
	}
	for _, a := range allowed {
		if *s == a {
			return s
		}
	}
	return nil
}

func parseDecimalString(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Decimal-comma convention: "." is a thousands separator when a ","
	// decimal separator is present.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
