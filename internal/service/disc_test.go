package service

import (
	"math"
	"testing"

	"psybench/internal/domain"
	"psybench/internal/inventory"
)

func discRaw(encode func(i int) float64) domain.RawScoreSet {
	raw := make(domain.RawScoreSet, len(inventory.DISCItems))
	for i, item := range inventory.DISCItems {
		v := encode(i)
		raw[item.ID] = []float64{v, v, v, v, v}
	}
	return raw
}

func TestScoreDISC_SingleQuadrantDominates(t *testing.T) {
	// Todos los ítems: más=D (índice 0), menos=C (índice 3) => codificado 3.
	raw := discRaw(func(int) float64 { return EncodeChoice(0, 3) })

	res := ScoreDISC(inventory.DISCItems, raw)

	if res.Type != "D" {
		t.Fatalf("expected profile D, got %q", res.Type)
	}
	if res.TraitScores["D"] != 24 {
		t.Fatalf("expected D score 24, got %v", res.TraitScores["D"])
	}
	for _, q := range []string{"I", "S", "C"} {
		if res.TraitScores[q] != 0 {
			t.Fatalf("expected clamped 0 for %s, got %v", q, res.TraitScores[q])
		}
	}

	percentages := res.Details["percentages"].(map[string]float64)
	if percentages["D"] != 100 {
		t.Fatalf("expected 100%% for D, got %v", percentages["D"])
	}

	nets := res.Details["net"].(map[string]float64)
	if nets["C"] != -24 {
		t.Fatalf("expected raw net -24 for C, got %v", nets["C"])
	}
}

func TestScoreDISC_PercentagesSumTo100(t *testing.T) {
	// Mitad de los ítems: más=I, menos=S. Otra mitad: más=C, menos=D.
	raw := discRaw(func(i int) float64 {
		if i%2 == 0 {
			return EncodeChoice(1, 2)
		}
		return EncodeChoice(3, 0)
	})

	res := ScoreDISC(inventory.DISCItems, raw)

	percentages := res.Details["percentages"].(map[string]float64)
	var total float64
	for _, q := range inventory.DISCQuadrants {
		total += percentages[q]
	}
	if math.Abs(total-100) > 1e-9 {
		t.Fatalf("expected percentages to sum to 100, got %v", total)
	}
}

func TestScoreDISC_TieBrokenByPriorityOrder(t *testing.T) {
	// I y C empatan con 12 cada uno; I gana por prioridad D > I > S > C.
	raw := discRaw(func(i int) float64 {
		if i%2 == 0 {
			return EncodeChoice(1, 2)
		}
		return EncodeChoice(3, 0)
	})

	res := ScoreDISC(inventory.DISCItems, raw)

	if res.TraitScores["I"] != res.TraitScores["C"] {
		t.Fatalf("expected tie between I and C, got %v vs %v", res.TraitScores["I"], res.TraitScores["C"])
	}
	if res.Type != "I" {
		t.Fatalf("expected tie to resolve to I, got %q", res.Type)
	}
}

func TestScoreDISC_AllFallbackSamplesAreNeutral(t *testing.T) {
	// El valor de respaldo 0 decodifica como más=D, menos=D: neto cero.
	raw := discRaw(func(int) float64 { return FallbackForcedChoice })

	res := ScoreDISC(inventory.DISCItems, raw)

	for _, q := range inventory.DISCQuadrants {
		if res.TraitScores[q] != 0 {
			t.Fatalf("expected 0 for %s, got %v", q, res.TraitScores[q])
		}
	}
	percentages := res.Details["percentages"].(map[string]float64)
	for _, q := range inventory.DISCQuadrants {
		if percentages[q] != 0 {
			t.Fatalf("expected 0%% for %s on degenerate input, got %v", q, percentages[q])
		}
	}
	if res.Type != "D" {
		t.Fatalf("expected default profile D, got %q", res.Type)
	}
}

func TestScoreDISC_AveragesMixedSamplesWithinItem(t *testing.T) {
	item := inventory.DISCItems[0]
	raw := domain.RawScoreSet{
		// Dos muestras más=D/menos=C y una más=C/menos=D.
		item.ID: {EncodeChoice(0, 3), EncodeChoice(0, 3), EncodeChoice(3, 0)},
	}

	res := ScoreDISC([]inventory.Item{item}, raw)

	nets := res.Details["net"].(map[string]float64)
	if math.Abs(nets["D"]-1.0/3.0) > 1e-9 {
		t.Fatalf("expected net 1/3 for D, got %v", nets["D"])
	}
	if math.Abs(nets["C"]+1.0/3.0) > 1e-9 {
		t.Fatalf("expected net -1/3 for C, got %v", nets["C"])
	}
}
