package storage

import (
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adapts the record store to the UserRepository port.
type UserRepo struct {
	store *Store
}

// NewUserRepository builds the adapter.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// FindByUsername returns the user with the exact username, or nil.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	recs := r.store.Query(CollectionUsers, map[string]any{"username": username})
	if len(recs) == 0 {
		return nil, nil
	}
	var u entity.User
	if err := Decode(recs[0], &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user by id, or nil.
func (r *UserRepo) GetByID(id int) (*entity.User, error) {
	rec := r.store.GetByID(CollectionUsers, id)
	if rec == nil {
		return nil, nil
	}
	var u entity.User
	if err := Decode(rec, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user, returning it with the assigned id.
func (r *UserRepo) Create(user *entity.User) (*entity.User, error) {
	rec, err := Encode(user)
	if err != nil {
		return nil, err
	}
	stored := r.store.Insert(CollectionUsers, rec)
	var out entity.User
	if err := Decode(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
