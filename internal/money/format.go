package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var vietnamese = message.NewPrinter(language.Vietnamese)

// FormatVND renders d with Vietnamese digit grouping ("1.234.567,5").
// It is meant for display only; never parse the result back.
//
// The integer and fraction parts are formatted separately so no digits go
// through a float. Amounts whose integer part overflows int64 are outside
// what storage can hold.
func FormatVND(d decimal.Decimal) string {
	r := Round(d)
	whole := r.Truncate(0)
	frac := strings.TrimRight(r.Sub(whole).Abs().StringFixed(Scale)[2:], "0")

	out := vietnamese.Sprint(number.Decimal(whole.Abs().IntPart()))
	if frac != "" {
		out += "," + frac
	}
	if r.IsNegative() {
		out = "-" + out
	}
	return out
}
