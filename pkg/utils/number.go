package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CentsToUnits converte centavos para a unidade monetária de exibição
func CentsToUnits(cents int64) float64 {
	return RoundWithTwoDecimalPlace(float64(cents) / 100)
}
