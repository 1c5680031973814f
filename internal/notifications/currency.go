package notifications

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a monetary value in Brazilian reais for email bodies,
// e.g. "R$ 1.250,00".
func FormatBRL(value float64) string {
	return brlPrinter.Sprint(currency.Symbol(currency.BRL.Amount(value)))
}
