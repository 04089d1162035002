// Package numfmt formata números para exibição com separador de milhar.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Amount formata um valor monetário com duas casas, ex.: "1,234.50".
func Amount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Count formata um inteiro, ex.: "12,345".
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Score formata uma nota opcional; nil vira "-".
func Score(v *float64) string {
	if v == nil {
		return "-"
	}
	return printer.Sprintf("%.2f", *v)
}
