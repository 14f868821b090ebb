package dto

import "github.com/shopspring/decimal"

// CreatePartRequest body for POST /api/parts. Quantity and ReorderLevel are
// deliberately untyped: clients send them as numbers or strings and they
// get coerced (0 and 10 on parse failure).
type CreatePartRequest struct {
	PartNumber        string           `json:"partNumber"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Quantity          any              `json:"quantity"`
	ReorderLevel      any              `json:"reorderLevel"`
	UnitCost          *decimal.Decimal `json:"unitCost"`
	StorageLocationID int              `json:"storageLocationId"`
	ShelfID           int              `json:"shelfId"`
}

// UpdatePartRequest body for PUT /api/parts/:id. Only set fields are merged
// over the stored part.
type UpdatePartRequest struct {
	PartNumber        *string          `json:"partNumber"`
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Quantity          *int             `json:"quantity"`
	ReorderLevel      *int             `json:"reorderLevel"`
	UnitCost          *decimal.Decimal `json:"unitCost"`
	StorageLocationID *int             `json:"storageLocationId"`
	ShelfID           *int             `json:"shelfId"`
}

// Fields returns the set fields as a partial record for shallow merge.
func (r UpdatePartRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.PartNumber != nil {
		fields["partNumber"] = *r.PartNumber
	}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.ReorderLevel != nil {
		fields["reorderLevel"] = *r.ReorderLevel
	}
	if r.UnitCost != nil {
		fields["unitCost"] = *r.UnitCost
	}
	if r.StorageLocationID != nil {
		fields["storageLocationId"] = *r.StorageLocationID
	}
	if r.ShelfID != nil {
		fields["shelfId"] = *r.ShelfID
	}
	return fields
}
