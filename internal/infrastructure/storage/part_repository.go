package storage

import (
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo adapts the record store to the PartRepository port.
type PartRepo struct {
	store *Store
}

// NewPartRepository builds the adapter.
func NewPartRepository(store *Store) *PartRepo {
	return &PartRepo{store: store}
}

// List returns all parts.
func (r *PartRepo) List() ([]entity.Part, error) {
	return DecodeSlice[entity.Part](r.store.GetAll(CollectionParts))
}

// GetByID returns a part by id, or nil.
func (r *PartRepo) GetByID(id int) (*entity.Part, error) {
	rec := r.store.GetByID(CollectionParts, id)
	if rec == nil {
		return nil, nil
	}
	var p entity.Part
	if err := Decode(rec, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a part, returning it with the assigned id.
func (r *PartRepo) Create(part *entity.Part) (*entity.Part, error) {
	rec, err := Encode(part)
	if err != nil {
		return nil, err
	}
	stored := r.store.Insert(CollectionParts, rec)
	var out entity.Part
	if err := Decode(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update shallow-merges the given fields over the stored part. Nil result
// without error means the part does not exist.
func (r *PartRepo) Update(id int, fields map[string]any) (*entity.Part, error) {
	rec := r.store.Update(CollectionParts, id, fields)
	if rec == nil {
		return nil, nil
	}
	var p entity.Part
	if err := Decode(rec, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a part, reporting whether it existed.
func (r *PartRepo) Delete(id int) (bool, error) {
	return r.store.Delete(CollectionParts, id), nil
}

// Search returns parts matching the conditions (loose equality, '%' wildcards).
func (r *PartRepo) Search(conditions map[string]any) ([]entity.Part, error) {
	return DecodeSlice[entity.Part](r.store.Query(CollectionParts, conditions))
}
