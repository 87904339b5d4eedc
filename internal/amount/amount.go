// Package amount parses and formats user-entered monetary amounts.
//
// Input accepts grouped decimal digits ("12,345.50") plus the Japanese
// magnitude markers 億 (x100,000,000) and 万 (x10,000) stacked
// left-to-right: "1億2345万6789" = 1e8 + 2345e4 + 6789. Full-width digits
// and signs are folded to half-width before parsing. This is a domain
// input convenience, not a general numeric parser.
package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	okuMul = decimal.NewFromInt(100_000_000)
	manMul = decimal.NewFromInt(10_000)
)

// fold converts full-width digits, signs and separators to their
// half-width forms and strips grouping/currency decoration.
func fold(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '０' && r <= '９':
			b.WriteRune('0' + (r - '０'))
		case r == '．':
			b.WriteRune('.')
		case r == '−' || r == 'ー' || r == '－':
			b.WriteRune('-')
		case r == '＋':
			b.WriteRune('+')
		case r == ',' || r == '，' || r == ' ' || r == '　' || r == '円':
			// grouping separators and the currency mark drop out
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize filters live input down to the runes the parser accepts:
// sign, digits, decimal point and the two magnitude markers.
func Normalize(s string) string {
	folded := fold(s)
	var b strings.Builder
	for _, r := range folded {
		if r == '+' || r == '-' || r == '.' || (r >= '0' && r <= '9') || r == '億' || r == '万' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse interprets s as a positive monetary amount. Amounts of zero or
// less are always invalid.
func Parse(s string) (float64, error) {
	x := fold(s)
	if x == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := parseDecimal(x)
	if err != nil {
		return 0, err
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount must be positive, got %s", d)
	}
	return d.InexactFloat64(), nil
}

func parseDecimal(x string) (decimal.Decimal, error) {
	// Plain number first.
	if d, err := decimal.NewFromString(x); err == nil {
		return d, nil
	}

	// Magnitude markers, highest first. Each marker multiplies the digits
	// to its left; the trailing run of digits is added as-is.
	total := decimal.Zero
	rest := x
	for _, marker := range []struct {
		rune string
		mul  decimal.Decimal
	}{{"億", okuMul}, {"万", manMul}} {
		head, tail, found := strings.Cut(rest, marker.rune)
		if !found {
			continue
		}
		v, err := decimal.NewFromString(head)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing amount %q: bad %s part %q", x, marker.rune, head)
		}
		total = total.Add(v.Mul(marker.mul))
		rest = tail
	}
	if rest != "" {
		v, err := decimal.NewFromString(rest)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing amount %q: %w", x, err)
		}
		total = total.Add(v)
	}
	return total, nil
}

// Format renders v with 3-digit grouping for CLI display. Fractions are
// kept to at most two places and trimmed when zero.
func Format(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	neg := d.IsNegative()
	d = d.Abs()

	s := d.String()
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
