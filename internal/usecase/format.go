package usecase

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.English)

// FormatPrice renders a USD price with precision proportional to magnitude:
// 8 decimals under a cent, 4 under a dollar, 2 under $100, and comma-grouped
// 2 decimals above that.
func FormatPrice(price float64) string {
	switch {
	case price < 0.01:
		return fmt.Sprintf("$%.8f", price)
	case price < 1:
		return fmt.Sprintf("$%.4f", price)
	case price < 100:
		return fmt.Sprintf("$%.2f", price)
	default:
		return usPrinter.Sprintf("$%.2f", price)
	}
}
