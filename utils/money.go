package utils

import (
	"fmt"
	"strings"
)

// FormatEUR formats an amount in euros as a string like "49,90 €".
// Uses comma as decimal separator (French convention).
func FormatEUR(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	s = strings.Replace(s, ".", ",", 1)
	return s + " €"
}
