package service

import (
	"strings"

	"psybench/internal/domain"
	"psybench/internal/inventory"
)

// Constantes de la escala MBTI directa: 8 ítems de 1-5 por dimensión.
const (
	mbtiMidpoint = 24.0
	mbtiMaxDev   = 16.0
)

// Constantes de la derivación desde dominios Big Five en [24,120].
const (
	derivedMidpoint = 72.0
	derivedMaxDev   = 48.0
	derivedPoleSum  = 144.0
)

// Ítems por dimensión en el catálogo completo.
const mbtiItemsPerDimension = 8

// ScoreMBTI puntúa el inventario directo: cada dimensión suma los promedios
// de sus 8 ítems (rango [8,40], punto medio 24). El puntaje por encima del
// punto medio elige la letra del polo alto; el empate exacto cae al polo
// bajo. PSI es la distancia normalizada al punto medio. Dimensiones con
// menos de 8 ítems presentes se escalan al catálogo completo.
func ScoreMBTI(items []inventory.Item, raw domain.RawScoreSet) domain.InventoryResult {
	sums := make(map[string]float64, len(inventory.MBTIDimensions))
	counts := make(map[string]int, len(inventory.MBTIDimensions))
	for _, item := range items {
		sums[item.Dimension] += averageSamples(raw[item.ID], FallbackLikert)
		counts[item.Dimension]++
	}

	dims := make(map[string]float64, len(sums))
	for dim, sum := range sums {
		dims[dim] = sum / float64(counts[dim]) * mbtiItemsPerDimension
	}

	psi := make(map[string]float64, len(dims))
	var letters strings.Builder
	for _, dim := range inventory.MBTIDimensions {
		score, ok := dims[dim.Code]
		if !ok {
			continue
		}
		if score > mbtiMidpoint {
			letters.WriteString(dim.High)
		} else {
			letters.WriteString(dim.Low)
		}
		psi[dim.Code] = clamp01(abs(score-mbtiMidpoint) / mbtiMaxDev)
	}

	return domain.InventoryResult{
		InventoryName: domain.InventoryMBTI,
		RawScores:     raw,
		TraitScores:   dims,
		Type:          letters.String(),
		PSI:           psi,
	}
}

// derivedPair vincula un par de polos con el dominio Big Five que lo alimenta.
type derivedPair struct {
	High, Low string
	Domain    string
}

var derivedPairs = []derivedPair{
	{High: "E", Low: "I", Domain: "E"},
	{High: "N", Low: "S", Domain: "O"},
	{High: "F", Low: "T", Domain: "A"},
	{High: "J", Low: "P", Domain: "C"},
}

// DeriveMBTIFromBigFive transforma dominios Big Five ya puntuados en un tipo
// MBTI. Usa E, O, A y C directamente (N no participa); punto medio 72 sobre
// el rango [24,120]. A diferencia del inventario directo, el empate exacto
// elige el polo alto. El mapa de rasgos es simétrico: el polo opuesto vale
// 144 menos el puntaje del dominio.
func DeriveMBTIFromBigFive(domains map[string]float64) domain.InventoryResult {
	traits := make(map[string]float64, len(derivedPairs)*2)
	psi := make(map[string]float64, len(derivedPairs))
	var letters strings.Builder

	for _, pair := range derivedPairs {
		score := domains[pair.Domain]
		if score >= derivedMidpoint {
			letters.WriteString(pair.High)
		} else {
			letters.WriteString(pair.Low)
		}
		traits[pair.High] = score
		traits[pair.Low] = derivedPoleSum - score
		psi[pair.High+pair.Low] = clamp01(abs(score-derivedMidpoint) / derivedMaxDev)
	}

	return domain.InventoryResult{
		InventoryName: domain.InventoryMBTIDerived,
		TraitScores:   traits,
		Type:          letters.String(),
		PSI:           psi,
		Details: map[string]any{
			"source": domain.InventoryBigFive,
		},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
