package shared

import (
	"strconv"
	"strings"
)

// ParseDecimal converts a decimal string the server sends for money and
// rating fields into a float64. Returns 0 for empty or non-numeric input so
// display code never branches on parse errors.
func ParseDecimal(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}

	return parsed
}

// FormatDecimal renders a float the way the server's decimal strings look,
// trimming a trailing zero fraction.
func FormatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
