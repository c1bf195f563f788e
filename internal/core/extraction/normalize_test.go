package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStrip(t *testing.T) {
	assert.Equal(t, "INV-2024-001", Normalize("  INV-2024-001\n", "strip"))
	assert.Equal(t, "", Normalize("   ", "strip"))
}

func TestNormalizeStripIdempotent(t *testing.T) {
	once := Normalize("  hello world  ", "strip")
	assert.Equal(t, once, Normalize(once, "strip"))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-01-15", Normalize("Date: 01/15/2024", "date"))
	assert.Equal(t, "2024-01-15", Normalize("01-15-2024", "date"))
	assert.Equal(t, "2023-12-31", Normalize("12/31/2023", "date"))
}

func TestNormalizeDateNoPatternIsNoop(t *testing.T) {
	// Year-first values do not match the two-two-four layout; they pass
	// through unchanged.
	assert.Equal(t, "2024/01/15", Normalize("2024/01/15", "date"))
	assert.Equal(t, "January 15, 2024", Normalize("January 15, 2024", "date"))
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "1250.00", Normalize("$1,250.00", "currency"))
	assert.Equal(t, "99", Normalize("£99", "currency"))
	assert.Equal(t, "2500.00", Normalize("€ 2,500.00", "currency"))
}

func TestNormalizeCurrencyIdempotentOnBareNumber(t *testing.T) {
	assert.Equal(t, "1250.00", Normalize("1250.00", "currency"))
}

func TestNormalizeUnknownKindIsIdentity(t *testing.T) {
	assert.Equal(t, "  raw value  ", Normalize("  raw value  ", "uppercase"))
	assert.Equal(t, "  raw value  ", Normalize("  raw value  ", ""))
}
