package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

// PartUseCase CRUD plus the low-stock view over parts.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase builds the use case.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// List returns all parts, optionally filtered by a name search term
// (substring, case-insensitive).
func (uc *PartUseCase) List(search string) ([]entity.Part, error) {
	if search == "" {
		return uc.repo.List()
	}
	return uc.repo.Search(map[string]any{"name": "%" + search + "%"})
}

// Create coerces the loosely typed quantity fields and inserts the part.
// Unparseable quantity becomes 0; unparseable reorder level becomes 10.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*entity.Part, error) {
	unitCost := decimal.Zero
	if in.UnitCost != nil {
		unitCost = *in.UnitCost
	}
	part := &entity.Part{
		PartNumber:        in.PartNumber,
		Name:              in.Name,
		Description:       in.Description,
		Quantity:          dto.IntOr(in.Quantity, 0),
		ReorderLevel:      dto.IntOr(in.ReorderLevel, entity.DefaultReorderLevel),
		UnitCost:          unitCost,
		StorageLocationID: in.StorageLocationID,
		ShelfID:           in.ShelfID,
	}
	return uc.repo.Create(part)
}

// Update merges the set fields over the stored part. Nil result without
// error means not found.
func (uc *PartUseCase) Update(id int, in dto.UpdatePartRequest) (*entity.Part, error) {
	return uc.repo.Update(id, in.Fields())
}

// Delete removes a part, reporting whether it existed.
func (uc *PartUseCase) Delete(id int) (bool, error) {
	return uc.repo.Delete(id)
}

// LowStock returns the parts at or below their reorder threshold.
func (uc *PartUseCase) LowStock() ([]entity.Part, error) {
	parts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	low := make([]entity.Part, 0)
	for _, p := range parts {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}
