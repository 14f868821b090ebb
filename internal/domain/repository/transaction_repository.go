package repository

import "github.com/onu-facilities/parts-tracker/internal/domain/entity"

// IssuanceRepository is the persistence port for PartsIssuance.
type IssuanceRepository interface {
	List() ([]entity.PartsIssuance, error)
	Create(issuance *entity.PartsIssuance) (*entity.PartsIssuance, error)
}

// DeliveryRepository is the persistence port for PartsDelivery.
type DeliveryRepository interface {
	List() ([]entity.PartsDelivery, error)
	Create(delivery *entity.PartsDelivery) (*entity.PartsDelivery, error)
}
