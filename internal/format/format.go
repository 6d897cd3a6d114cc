package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency formats a major-unit amount with two decimals and thousands separators.
// Example: Currency(1234.5, "GBP") => "£1,234.50"
func Currency(amount float64, currency string) string {
	minor := int64(math.Round(amount * 100))
	neg := minor < 0
	if neg {
		minor = -minor
	}
	head := thousandSep(minor / 100)
	tail := fmt.Sprintf("%02d", minor%100)

	var out string
	switch strings.ToUpper(currency) {
	case "GBP":
		out = "£" + head + "." + tail
	case "EUR":
		out = "€" + head + "." + tail
	case "USD":
		out = "$" + head + "." + tail
	default:
		out = strings.ToUpper(currency) + " " + head + "." + tail
	}
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
