package domain

import (
	"time"
)

// Nombres de inventarios soportados.
const (
	InventoryBigFive     = "bigfive"
	InventoryMBTI        = "mbti"
	InventoryDISC        = "disc"
	InventoryMBTIDerived = "mbti_derived"
)

// KnownInventory indica si name es un inventario administrable.
func KnownInventory(name string) bool {
	switch name {
	case InventoryBigFive, InventoryMBTI, InventoryDISC:
		return true
	}
	return false
}

// RawScoreSet mapea id de ítem a sus muestras crudas, en orden de obtención.
// Cada entrada se escribe una sola vez, con exactamente sampleCount valores.
type RawScoreSet map[string][]float64

// InventoryResult es el resultado estructurado de un inventario ya puntuado.
type InventoryResult struct {
	InventoryName string             `json:"inventory_name"`
	RawScores     RawScoreSet        `json:"raw_scores,omitempty"`
	TraitScores   map[string]float64 `json:"trait_scores"`
	Type          string             `json:"type,omitempty"`
	PSI           map[string]float64 `json:"psi,omitempty"`
	Details       map[string]any     `json:"details,omitempty"`
}

// SampleLog registra la finalización de un ítem durante el muestreo.
// Es canal lateral de diagnóstico; no participa del control de flujo.
type SampleLog struct {
	ItemID    string    `json:"item_id"`
	Inventory string    `json:"inventory"`
	Samples   int       `json:"samples"`
	Failures  int       `json:"failures"`
	Timestamp time.Time `json:"timestamp"`
}

// ModelProfile agrupa los resultados de todos los inventarios de una corrida.
type ModelProfile struct {
	ID           string                     `json:"id"`
	ModelName    string                     `json:"model_name"`
	Persona      string                     `json:"persona,omitempty"`
	SystemPrompt string                     `json:"system_prompt,omitempty"`
	Results      map[string]InventoryResult `json:"results"`
	Logs         []SampleLog                `json:"logs,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
}

// FacetVector aplana los puntajes de facetas Big Five en un vector de 30
// dimensiones con orden estable, para búsquedas de similitud.
func (p *ModelProfile) FacetVector(facetOrder []string) []float32 {
	res, ok := p.Results[InventoryBigFive]
	if !ok {
		return nil
	}
	vec := make([]float32, len(facetOrder))
	for i, facet := range facetOrder {
		vec[i] = float32(res.TraitScores[facet])
	}
	return vec
}

// Estados de una corrida de evaluación en segundo plano.
const (
	RunStatusPending   = "pending"
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// RunStatus describe el estado observable de una corrida lanzada vía API.
type RunStatus struct {
	RunID     string        `json:"run_id"`
	ModelName string        `json:"model_name"`
	Status    string        `json:"status"`
	Error     string        `json:"error,omitempty"`
	Profile   *ModelProfile `json:"profile,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}
