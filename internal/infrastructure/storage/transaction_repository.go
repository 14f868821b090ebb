package storage

import (
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

var (
	_ repository.IssuanceRepository = (*IssuanceRepo)(nil)
	_ repository.DeliveryRepository = (*DeliveryRepo)(nil)
)

// IssuanceRepo adapts the record store to the IssuanceRepository port.
type IssuanceRepo struct {
	store *Store
}

// NewIssuanceRepository builds the adapter.
func NewIssuanceRepository(store *Store) *IssuanceRepo {
	return &IssuanceRepo{store: store}
}

// List returns all issuances.
func (r *IssuanceRepo) List() ([]entity.PartsIssuance, error) {
	return DecodeSlice[entity.PartsIssuance](r.store.GetAll(CollectionIssuances))
}

// Create inserts an issuance, returning it with the assigned id.
func (r *IssuanceRepo) Create(issuance *entity.PartsIssuance) (*entity.PartsIssuance, error) {
	rec, err := Encode(issuance)
	if err != nil {
		return nil, err
	}
	stored := r.store.Insert(CollectionIssuances, rec)
	var out entity.PartsIssuance
	if err := Decode(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeliveryRepo adapts the record store to the DeliveryRepository port.
type DeliveryRepo struct {
	store *Store
}

// NewDeliveryRepository builds the adapter.
func NewDeliveryRepository(store *Store) *DeliveryRepo {
	return &DeliveryRepo{store: store}
}

// List returns all deliveries.
func (r *DeliveryRepo) List() ([]entity.PartsDelivery, error) {
	return DecodeSlice[entity.PartsDelivery](r.store.GetAll(CollectionDeliveries))
}

// Create inserts a delivery, returning it with the assigned id.
func (r *DeliveryRepo) Create(delivery *entity.PartsDelivery) (*entity.PartsDelivery, error) {
	rec, err := Encode(delivery)
	if err != nil {
		return nil, err
	}
	stored := r.store.Insert(CollectionDeliveries, rec)
	var out entity.PartsDelivery
	if err := Decode(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
