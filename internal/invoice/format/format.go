// Package format renders invoice amounts and dates for display.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency renders an amount in cents as a US dollar string, e.g. "$1,234.56".
func Currency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := cents / 100
	remainder := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(dollars), remainder)
}

// Date renders a timestamp as a short US date, e.g. "Oct 5, 2024".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
