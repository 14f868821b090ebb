package entity

import "github.com/shopspring/decimal"

// DefaultReorderLevel applies when a part is created without a reorder threshold.
const DefaultReorderLevel = 10

// Part is a stocked inventory item. Quantity never goes below zero; issuances
// clamp the decrement instead of failing.
type Part struct {
	ID                int             `json:"id"`
	PartNumber        string          `json:"partNumber,omitempty"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Quantity          int             `json:"quantity"`
	ReorderLevel      int             `json:"reorderLevel"`
	UnitCost          decimal.Decimal `json:"unitCost"`
	StorageLocationID int             `json:"storageLocationId,omitempty"`
	ShelfID           int             `json:"shelfId,omitempty"`
}

// LowStock reports whether the part is at or below its reorder threshold.
// A zero threshold counts as unset and falls back to the default.
func (p Part) LowStock() bool {
	level := p.ReorderLevel
	if level == 0 {
		level = DefaultReorderLevel
	}
	return p.Quantity <= level
}
