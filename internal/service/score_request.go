package service

import (
	"errors"
	"fmt"
	"math"

	"psybench/internal/domain"
	"psybench/internal/inventory"
)

var (
	ErrNoInventories    = errors.New("no inventories requested")
	ErrUnknownInventory = errors.New("unknown inventory")
	ErrUnknownItem      = errors.New("unknown item id")
	ErrEmptySamples     = errors.New("empty sample array")
	ErrSampleOutOfRange = errors.New("sample out of range")
)

// ScoreRequest es el sobre de entrada para puntuar muestras ya obtenidas,
// sin pasar por el muestreador.
type ScoreRequest struct {
	RawScores   map[string][]float64 `json:"raw_scores"`
	Inventories []string             `json:"inventories" binding:"required"`
}

// ValidateScoreRequest rechaza el sobre completo antes de puntuar nada:
// inventario desconocido, ítem desconocido, arreglos vacíos, valores no
// finitos, Likert fuera de [1,5] o codificación más/menos inválida.
func ValidateScoreRequest(req ScoreRequest) error {
	if len(req.Inventories) == 0 {
		return ErrNoInventories
	}
	for _, name := range req.Inventories {
		if !domain.KnownInventory(name) {
			return fmt.Errorf("%w: %q", ErrUnknownInventory, name)
		}
	}

	for id, samples := range req.RawScores {
		item, ok := lookupItem(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownItem, id)
		}
		if len(samples) == 0 {
			return fmt.Errorf("%w: item %q", ErrEmptySamples, id)
		}
		for _, s := range samples {
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return fmt.Errorf("%w: item %q has non-finite value", ErrSampleOutOfRange, id)
			}
			if item.Type == inventory.ForcedChoicePair {
				if _, _, ok := DecodeChoice(s); !ok {
					return fmt.Errorf("%w: item %q has invalid encoding %v", ErrSampleOutOfRange, id, s)
				}
				continue
			}
			if s < 1 || s > 5 {
				return fmt.Errorf("%w: item %q value %v outside [1,5]", ErrSampleOutOfRange, id, s)
			}
		}
	}
	return nil
}

// ScoreEnvelope valida y puntúa el sobre. Por inventario solo se puntúan los
// ítems del catálogo presentes en raw_scores, así los catálogos parciales
// mantienen las mismas reglas de agregación. Un resultado Big Five siempre
// trae además el tipo MBTI derivado.
func ScoreEnvelope(req ScoreRequest) (map[string]domain.InventoryResult, error) {
	if err := ValidateScoreRequest(req); err != nil {
		return nil, err
	}

	results := make(map[string]domain.InventoryResult, len(req.Inventories)+1)
	for _, name := range req.Inventories {
		items := presentItems(inventory.ByInventory(name), req.RawScores)
		raw := restrictScores(items, req.RawScores)
		switch name {
		case domain.InventoryBigFive:
			res := BigFiveResult(items, raw)
			results[name] = res
			results[domain.InventoryMBTIDerived] = DeriveMBTIFromBigFive(domainScores(res))
		case domain.InventoryMBTI:
			results[name] = ScoreMBTI(items, raw)
		case domain.InventoryDISC:
			results[name] = ScoreDISC(items, raw)
		}
	}
	return results, nil
}

// domainScores filtra los puntajes de dominio (claves de una letra) de un
// resultado Big Five.
func domainScores(res domain.InventoryResult) map[string]float64 {
	domains := make(map[string]float64, len(inventory.BigFiveDomains))
	for _, d := range inventory.BigFiveDomains {
		if v, ok := res.TraitScores[d]; ok {
			domains[d] = v
		}
	}
	return domains
}

func presentItems(items []inventory.Item, raw map[string][]float64) []inventory.Item {
	present := make([]inventory.Item, 0, len(items))
	for _, item := range items {
		if _, ok := raw[item.ID]; ok {
			present = append(present, item)
		}
	}
	return present
}

func restrictScores(items []inventory.Item, raw map[string][]float64) domain.RawScoreSet {
	out := make(domain.RawScoreSet, len(items))
	for _, item := range items {
		out[item.ID] = raw[item.ID]
	}
	return out
}

var itemIndex = buildItemIndex()

func buildItemIndex() map[string]inventory.Item {
	index := make(map[string]inventory.Item)
	for _, name := range []string{domain.InventoryBigFive, domain.InventoryMBTI, domain.InventoryDISC} {
		for _, item := range inventory.ByInventory(name) {
			index[item.ID] = item
		}
	}
	return index
}

func lookupItem(id string) (inventory.Item, bool) {
	item, ok := itemIndex[id]
	return item, ok
}
