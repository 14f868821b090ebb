package repository

import "github.com/onu-facilities/parts-tracker/internal/domain/entity"

// PartRepository is the persistence port for Part (DIP).
// Update takes a partial field set and shallow-merges it over the stored
// record; a nil result without error means the part does not exist.
type PartRepository interface {
	List() ([]entity.Part, error)
	GetByID(id int) (*entity.Part, error)
	Create(part *entity.Part) (*entity.Part, error)
	Update(id int, fields map[string]any) (*entity.Part, error)
	Delete(id int) (bool, error)
	Search(conditions map[string]any) ([]entity.Part, error)
}
