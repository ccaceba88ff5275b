package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptPrinter = message.NewPrinter(language.EuropeanPortuguese)

// FormatEUR renders a monetary amount the way the UI displays it: pt-PT
// number formatting with two decimals and the euro sign. Amounts are stored
// as plain numbers; this is display-only.
func FormatEUR(v float64) string {
	return ptPrinter.Sprintf("%.2f €", v)
}
