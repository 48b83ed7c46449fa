package service

import (
	"psybench/internal/domain"
	"psybench/internal/inventory"
)

// Umbrales de interpretación por dominio.
const (
	bigFiveLowCutoff  = 56.0
	bigFiveHighCutoff = 88.0
)

// BigFiveScores agrupa los puntajes intermedios del inventario Big Five.
type BigFiveScores struct {
	Domains         map[string]float64
	Facets          map[string]float64
	Interpretations map[string]string
}

// Ítems por faceta en el catálogo completo; los catálogos parciales se
// normalizan a esta escala para que los rangos documentados se mantengan.
const bigFiveItemsPerFacet = 4

// ScoreBigFive puntúa el inventario a partir de las muestras crudas:
// promedia las muestras de cada ítem, invierte los ítems con clave negativa
// (6-s), suma los ítems de cada faceta y las facetas de cada dominio.
// Las facetas quedan en [4,20] y los dominios en [24,120]. Recorre el slice
// de ítems recibido; con menos de 4 ítems por faceta el promedio se escala a
// los 4 del catálogo completo, así catálogos reducidos puntúan en los mismos
// rangos.
func ScoreBigFive(items []inventory.Item, raw domain.RawScoreSet) BigFiveScores {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, item := range items {
		score := averageSamples(raw[item.ID], FallbackLikert)
		if item.Reversed {
			score = 6 - score
		}
		sums[item.Facet] += score
		counts[item.Facet]++
	}

	facets := make(map[string]float64, len(sums))
	domains := make(map[string]float64)
	for facet, sum := range sums {
		if facet == "" {
			continue
		}
		facets[facet] = sum / float64(counts[facet]) * bigFiveItemsPerFacet
		domains[facet[:1]] += facets[facet]
	}

	interpretations := make(map[string]string, len(domains))
	for d, score := range domains {
		interpretations[d] = interpretBigFiveDomain(score)
	}

	return BigFiveScores{
		Domains:         domains,
		Facets:          facets,
		Interpretations: interpretations,
	}
}

// BigFiveResult arma el resultado estructurado del inventario. TraitScores
// lleva los 5 dominios por letra y las 30 facetas por código.
func BigFiveResult(items []inventory.Item, raw domain.RawScoreSet) domain.InventoryResult {
	scores := ScoreBigFive(items, raw)

	traits := make(map[string]float64, len(scores.Domains)+len(scores.Facets))
	for d, v := range scores.Domains {
		traits[d] = v
	}
	for f, v := range scores.Facets {
		traits[f] = v
	}

	return domain.InventoryResult{
		InventoryName: domain.InventoryBigFive,
		RawScores:     raw,
		TraitScores:   traits,
		Details: map[string]any{
			"interpretations": scores.Interpretations,
		},
	}
}

func interpretBigFiveDomain(score float64) string {
	switch {
	case score < bigFiveLowCutoff:
		return "low"
	case score > bigFiveHighCutoff:
		return "high"
	default:
		return "medium"
	}
}

// averageSamples promedia las muestras de un ítem; sin muestras devuelve el
// valor neutral del tipo.
func averageSamples(samples []float64, fallback float64) float64 {
	if len(samples) == 0 {
		return fallback
	}
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}
