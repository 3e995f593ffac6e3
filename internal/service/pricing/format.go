package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Принтер русской локали: группировка разрядов неразрывным пробелом
var ruPrinter = message.NewPrinter(language.Russian)

// FormatPrice форматирует сумму в рублях без копеек, например "2 000 ₽"
func FormatPrice(amount float64) string {
	return ruPrinter.Sprintf("%v ₽", number.Decimal(amount, number.MaxFractionDigits(0)))
}
