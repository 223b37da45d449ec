package utils

import "math"

// RoundWithTwoDecimalPlace arredonda percentuais e metas para duas casas
// decimais antes de irem para o JSON ou para o relatório.
func RoundWithTwoDecimalPlace(value float64) float64 {
	return math.Round(value*100) / 100
}
