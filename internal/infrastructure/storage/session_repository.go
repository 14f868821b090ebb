package storage

import (
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo adapts the store's session sub-map to the SessionRepository port.
type SessionRepo struct {
	store *Store
}

// NewSessionRepository builds the adapter.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Get returns the session for the token, or nil.
func (r *SessionRepo) Get(token string) (*entity.Session, error) {
	rec := r.store.GetSession(token)
	if rec == nil {
		return nil, nil
	}
	var s entity.Session
	if err := Decode(rec, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Set stores the session under the token.
func (r *SessionRepo) Set(token string, session *entity.Session) error {
	rec, err := Encode(session)
	if err != nil {
		return err
	}
	r.store.SetSession(token, rec)
	return nil
}

// Delete removes the token's session.
func (r *SessionRepo) Delete(token string) error {
	r.store.DeleteSession(token)
	return nil
}
