package extraction

import (
	"fmt"
	"regexp"
	"strings"
)

// kind is the closed set of post-processing strategies. Unknown kind strings
// map to kindIdentity so ad-hoc templates with custom kinds degrade to a
// pass-through instead of an error.
type kind int

const (
	kindIdentity kind = iota
	kindStrip
	kindDate
	kindCurrency
)

func kindOf(s string) kind {
	switch s {
	case "strip":
		return kindStrip
	case "date":
		return kindDate
	case "currency":
		return kindCurrency
	default:
		return kindIdentity
	}
}

var (
	// Two 2-digit groups then a 4-digit group, month-day-year order.
	reDateParts = regexp.MustCompile(`(\d{2})[/-](\d{2})[/-](\d{4})`)

	reCurrencySymbol = regexp.MustCompile(`[\p{Sc}]`)
	reSeparators     = regexp.MustCompile(`[,\s]`)
)

// Normalize canonicalizes a raw matched substring according to the declared
// post-processing kind. It is pure and total: it never fails, and an unknown
// kind returns the value unchanged.
func Normalize(raw string, postprocess string) string {
	switch kindOf(postprocess) {
	case kindStrip:
		return strings.TrimSpace(raw)
	case kindDate:
		return normalizeDate(raw)
	case kindCurrency:
		return normalizeCurrency(raw)
	default:
		return raw
	}
}

// normalizeDate rewrites the first MM/DD/YYYY or MM-DD-YYYY occurrence to
// ISO YYYY-MM-DD. The month-day-year reading is a fixed input convention; a
// value with no such sub-pattern is returned unchanged.
func normalizeDate(raw string) string {
	m := reDateParts.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	month, day, year := m[1], m[2], m[3]
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

// normalizeCurrency strips currency symbols and thousands separators, leaving
// a bare numeric string with the decimal point intact ("$1,250.00" -> "1250.00").
func normalizeCurrency(raw string) string {
	out := reCurrencySymbol.ReplaceAllString(raw, "")
	return reSeparators.ReplaceAllString(out, "")
}
