package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceCents(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  int64
	}{
		{"plain dollars", "$12.34", 1234},
		{"thousands separator", "$1,234.50", 123450},
		{"no currency sign", "24.99", 2499},
		{"whole dollars", "$45", 4500},
		{"surrounding text", "Sale: $9.99 only!", 999},
		{"empty input", "", 0},
		{"non numeric", "free", 0},
		{"multiple dots", "1.2.3", 0},
		{"lone dot", ".", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePriceCents(tc.input))
		})
	}
}

func TestParsePriceCents_RoundsAtTheCent(t *testing.T) {
	assert.Equal(t, int64(1235), ParsePriceCents("12.345"))
	assert.Equal(t, int64(1234), ParsePriceCents("12.344"))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$12.34", FormatCents(1234))
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$1234.50", FormatCents(123450))
	assert.Equal(t, "$0.05", FormatCents(5))
}
