package storage

// LookupRepo adapts the record store to the generic LookupRepository port.
// One instance per reference collection; the type parameter fixes the
// entity the collection holds.
type LookupRepo[T any] struct {
	store      *Store
	collection string
}

// NewLookupRepository builds the adapter for a named collection.
func NewLookupRepository[T any](store *Store, collection string) *LookupRepo[T] {
	return &LookupRepo[T]{store: store, collection: collection}
}

// List returns every item in the collection.
func (r *LookupRepo[T]) List() ([]T, error) {
	return DecodeSlice[T](r.store.GetAll(r.collection))
}

// GetByID returns an item by id, or nil.
func (r *LookupRepo[T]) GetByID(id int) (*T, error) {
	rec := r.store.GetByID(r.collection, id)
	if rec == nil {
		return nil, nil
	}
	var v T
	if err := Decode(rec, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts an item, returning it with the assigned id.
func (r *LookupRepo[T]) Create(item *T) (*T, error) {
	rec, err := Encode(item)
	if err != nil {
		return nil, err
	}
	stored := r.store.Insert(r.collection, rec)
	var out T
	if err := Decode(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
