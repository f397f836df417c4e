// Package util holds small shared helpers.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDinars extracts the integer amount from a free-text price such as
// "800 DA" or "1 200 DA". Unparseable or donation prices yield zero.
func ParseDinars(price string) int {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(price) {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)

			continue
		}
		// Stop at the first non-digit, non-spacing rune: "800 DA" keeps 800,
		// "2x500" keeps only the leading 2, matching integer-prefix parsing.
		if r != ' ' && r != ' ' {
			break
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	amount, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}

	return amount
}

// FormatDinars renders an amount as price text, e.g. "800 DA".
func FormatDinars(amount int) string {
	return fmt.Sprintf("%d DA", amount)
}
