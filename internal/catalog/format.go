package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatPercent renders an efficacy with one decimal, e.g. "92.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCurrency renders a USD amount rounded to whole dollars with
// thousands separators, e.g. "$300,000".
func FormatCurrency(v float64) string {
	neg := v < 0
	digits := strconv.FormatFloat(math.Abs(math.Round(v)), 'f', 0, 64)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
