package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent devolve a fração part/total em porcentagem, com duas casas
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(float64(part) * 100 / float64(total))
}

// FormatDecimal formata com duas casas, sem zeros à direita desnecessários (1.50 -> 1.5)
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(RoundWithTwoDecimalPlace(f), 'f', -1, 64)
}
