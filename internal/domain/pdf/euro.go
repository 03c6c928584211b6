package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var italianPrinter = message.NewPrinter(language.Italian)

// FormatEuro renders a monetary amount with Italian digit grouping and a
// single leading "€ " prefix, e.g. 24999.99 -> "€ 24.999,99".
//
// The it-IT formatter may emit non-breaking spaces; they are collapsed to
// plain spaces so re-rendering the same value is byte-identical. A
// trailing currency symbol coming from the locale data is stripped before
// the prefix is applied.
func FormatEuro(v decimal.Decimal) string {
	f, _ := v.Float64()
	s := italianPrinter.Sprintf("%v", number.Decimal(f, number.Scale(2)))
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u202f", " ")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.TrimSpace(s)
	return "€ " + s
}
