package service

import (
	"psybench/internal/domain"
	"psybench/internal/inventory"
)

// ScoreDISC puntúa el inventario de elección forzada. Cada muestra almacenada
// codifica una selección más/menos como most*10+least; por ítem se netea la
// contribución +1 del cuadrante "más" y -1 del "menos", promediada sobre las
// muestras del ítem, y se suma a través de los ítems. Los netos negativos se
// recortan a cero para los puntajes reportados; los porcentajes se calculan
// sobre la suma de los recortados y el perfil es el cuadrante máximo, con
// desempate por prioridad fija D, I, S, C.
func ScoreDISC(items []inventory.Item, raw domain.RawScoreSet) domain.InventoryResult {
	quadrants := inventory.DISCQuadrants
	nets := make(map[string]float64, len(quadrants))
	for _, q := range quadrants {
		nets[q] = 0
	}

	for _, item := range items {
		samples := raw[item.ID]
		if len(samples) == 0 {
			continue
		}
		perItem := make(map[string]float64, len(quadrants))
		decoded := 0
		for _, sample := range samples {
			most, least, ok := DecodeChoice(sample)
			if !ok {
				continue
			}
			decoded++
			perItem[quadrants[most]] += 1
			perItem[quadrants[least]] -= 1
		}
		if decoded == 0 {
			continue
		}
		for q, v := range perItem {
			nets[q] += v / float64(decoded)
		}
	}

	scores := make(map[string]float64, len(quadrants))
	var total float64
	for _, q := range quadrants {
		s := nets[q]
		if s < 0 {
			s = 0
		}
		scores[q] = s
		total += s
	}

	percentages := make(map[string]float64, len(quadrants))
	for _, q := range quadrants {
		if total > 0 {
			percentages[q] = scores[q] / total * 100
		} else {
			percentages[q] = 0
		}
	}

	// Argmax con prioridad D > I > S > C: el primer máximo estricto gana.
	profile := quadrants[0]
	best := scores[profile]
	for _, q := range quadrants[1:] {
		if scores[q] > best {
			profile = q
			best = scores[q]
		}
	}

	return domain.InventoryResult{
		InventoryName: domain.InventoryDISC,
		RawScores:     raw,
		TraitScores:   scores,
		Type:          profile,
		Details: map[string]any{
			"net":         nets,
			"percentages": percentages,
		},
	}
}
