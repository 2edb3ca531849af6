package service

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Montos en pesos chilenos, sin decimales y con separador de miles.
var clPrinter = message.NewPrinter(language.MustParse("es-CL"))

// FormatAmount renders an amount the way the screens show it: "$100.000.000".
func FormatAmount(v decimal.Decimal) string {
	return "$" + FormatNumber(v)
}

func FormatNumber(v decimal.Decimal) string {
	return clPrinter.Sprintf("%d", v.Round(0).IntPart())
}

// FormatRate renders a percentage with a decimal comma: "4,5%".
func FormatRate(v decimal.Decimal) string {
	return strings.Replace(v.String(), ".", ",", 1) + "%"
}
