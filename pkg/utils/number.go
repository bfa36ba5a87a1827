package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBookingCode formata o código de reserva impresso nos comprovantes
func FormatBookingCode(id int) string {
	return fmt.Sprintf("DP-%06d", id)
}

// FormatVND formata um valor em đồng com separador de milhar
func FormatVND(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := groups[0]
	for _, group := range groups[1:] {
		out += "." + group
	}

	return sign + out + " VNĐ"
}
