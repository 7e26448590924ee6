package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineTotal returns price × quantity.
func LineTotal(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}

// Sum adds the given amounts.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}

// Remaining returns total minus paid, never below zero.
func Remaining(total, paid float64) float64 {
	rest := decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(paid))
	if rest.IsNegative() {
		return 0
	}
	return rest.InexactFloat64()
}

// Average divides total by n and rounds to two decimal places. Zero n yields zero.
func Average(total float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(n))).Round(2).InexactFloat64()
}

// Rupiah formats amount the Indonesian way, e.g. "Rp 1.250.000" or "Rp 12.500,50".
// Cents are shown only when non-zero.
func Rupiah(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole, cents, _ := strings.Cut(d.StringFixed(2), ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if cents != "00" {
		b.WriteByte(',')
		b.WriteString(cents)
	}
	return "Rp " + sign + b.String()
}
