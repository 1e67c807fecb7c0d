package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePriceCents converts a display price string such as "$1,234.50" into
// integer cents. Every rune that is not a digit or a dot is stripped before
// parsing, and the remaining value is rounded at the cent. Malformed or empty
// input yields 0 rather than an error.
func ParsePriceCents(text string) int64 {
	var numeric strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			numeric.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(numeric.String(), 64)
	if err != nil {
		return 0
	}

	return int64(math.Round(value * 100))
}

// FormatCents renders integer cents as a "$12.34" display string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
