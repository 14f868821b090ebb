package repository

// LookupRepository is the persistence port shared by the reference
// collections (buildings, cost centers, staff, storage locations, shelves,
// tools). They are all plain list-and-create resources.
type LookupRepository[T any] interface {
	List() ([]T, error)
	GetByID(id int) (*T, error)
	Create(item *T) (*T, error)
}
