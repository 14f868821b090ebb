package usecase

import "github.com/onu-facilities/parts-tracker/internal/domain/repository"

// LookupUseCase list-and-create over one reference collection. Buildings,
// cost centers, staff, storage locations, shelves and tools all share it.
type LookupUseCase[T any] struct {
	repo repository.LookupRepository[T]
}

// NewLookupUseCase builds the use case for one collection.
func NewLookupUseCase[T any](repo repository.LookupRepository[T]) *LookupUseCase[T] {
	return &LookupUseCase[T]{repo: repo}
}

// List returns every item.
func (uc *LookupUseCase[T]) List() ([]T, error) {
	return uc.repo.List()
}

// Create inserts an item, returning it with its assigned id.
func (uc *LookupUseCase[T]) Create(item *T) (*T, error) {
	return uc.repo.Create(item)
}
