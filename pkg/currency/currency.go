// Package currency formatea montos en reales (BRL) con separadores pt-BR.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL devuelve el monto como "R$ 1.500,00" (redondeado a centavos).
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
