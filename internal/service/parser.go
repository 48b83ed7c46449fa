package service

import (
	"regexp"
	"strconv"

	"psybench/internal/inventory"
)

// Valores de respaldo cuando no hay respuesta parseable o la consulta falla.
// No son errores: el ruido del modelo es parte del contrato.
const (
	FallbackLikert       = 3.0
	FallbackForcedChoice = 0.0
)

var digitRunRe = regexp.MustCompile(`[0-9]+`)

// ParseSample extrae una señal numérica del texto libre del modelo.
// Likert5: el primer dígito 1-5 aislado; sin coincidencia devuelve 3.
// ForcedChoicePair: los dos primeros dígitos se leen como índices 1-based de
// "más" y "menos", y se codifican como most*10+least en base 0; con menos de
// dos dígitos devuelve 0 (sin selección).
func ParseSample(raw string, itemType inventory.ItemType) float64 {
	digits := extractStandaloneDigits(raw)

	switch itemType {
	case inventory.ForcedChoicePair:
		most, least, ok := firstChoicePair(digits)
		if !ok {
			return FallbackForcedChoice
		}
		return float64(most*10 + least)
	default:
		for _, d := range digits {
			if d >= 1 && d <= 5 {
				return float64(d)
			}
		}
		return FallbackLikert
	}
}

// EncodeChoice arma el valor almacenable para una selección más/menos 0-based.
func EncodeChoice(most, least int) float64 {
	return float64(most*10 + least)
}

// DecodeChoice invierte EncodeChoice. Valores fuera de rango se reportan
// como inválidos.
func DecodeChoice(encoded float64) (most, least int, ok bool) {
	v := int(encoded)
	if float64(v) != encoded || v < 0 {
		return 0, 0, false
	}
	most, least = v/10, v%10
	if most > 3 || least > 3 {
		return 0, 0, false
	}
	return most, least, true
}

// extractStandaloneDigits devuelve los dígitos que aparecen solos: corridas
// numéricas de longitud uno. "Elijo 3" aporta 3; "item 12" no aporta nada.
func extractStandaloneDigits(raw string) []int {
	var digits []int
	for _, run := range digitRunRe.FindAllString(raw, -1) {
		if len(run) != 1 {
			continue
		}
		d, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		digits = append(digits, d)
	}
	return digits
}

func firstChoicePair(digits []int) (most, least int, ok bool) {
	var picks []int
	for _, d := range digits {
		if d >= 1 && d <= 4 {
			picks = append(picks, d-1)
			if len(picks) == 2 {
				return picks[0], picks[1], true
			}
		}
	}
	return 0, 0, false
}
