package repository

import "github.com/onu-facilities/parts-tracker/internal/domain/entity"

// SessionRepository is the persistence port for login sessions, keyed by
// opaque token rather than integer id.
type SessionRepository interface {
	Get(token string) (*entity.Session, error)
	Set(token string, session *entity.Session) error
	Delete(token string) error
}
