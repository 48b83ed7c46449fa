package inventory

import "psybench/internal/domain"

// ItemType distingue el formato de respuesta de un ítem.
type ItemType int

const (
	// Likert5 espera un acuerdo de 1 a 5 con una afirmación o par bipolar.
	Likert5 ItemType = iota
	// ForcedChoicePair espera elegir la palabra "más" y "menos" descriptiva
	// entre cuatro candidatas.
	ForcedChoicePair
)

// Item es un ítem inmutable de un inventario. Según el tipo se usa Statement
// (Likert5 plano), Left/Right+Dimension (Likert5 bipolar) o Words.
type Item struct {
	ID        string
	Inventory string
	Type      ItemType
	Statement string
	Left      string
	Right     string
	Dimension string
	Facet     string
	Reversed  bool
	Words     [4]string
}

// ByInventory devuelve el catálogo completo del inventario pedido, en su
// orden canónico. Nil para nombres desconocidos.
func ByInventory(name string) []Item {
	switch name {
	case domain.InventoryBigFive:
		return BigFiveItems
	case domain.InventoryMBTI:
		return MBTIItems
	case domain.InventoryDISC:
		return DISCItems
	}
	return nil
}
