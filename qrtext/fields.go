package qrtext

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// formattedAmount renders an amount with exactly two decimal places, a
// period as decimal separator and no thousands separator. An absent amount
// becomes an empty line.
func formattedAmount(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.StringFixed(2)
}

// parseAmount parses an amount line. The whole line must be a non-negative
// decimal number with a period separator.
func parseAmount(line string) (*decimal.Decimal, bool) {
	if line == "" || strings.Count(line, ".") > 1 {
		return nil, false
	}
	for i := 0; i < len(line); i++ {
		if ch := line[i]; ch != '.' && (ch < '0' || ch > '9') {
			return nil, false
		}
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// formattedDate renders a date in ISO 8601 format (yyyy-MM-dd). An absent
// date becomes an empty line.
func formattedDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format("2006-01-02")
}

func parseDate(line string) (*time.Time, bool) {
	t, err := time.Parse("2006-01-02", line)
	if err != nil {
		return nil, false
	}
	return &t, true
}
