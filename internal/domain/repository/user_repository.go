package repository

import "github.com/onu-facilities/parts-tracker/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
	GetByID(id int) (*entity.User, error)
	Create(user *entity.User) (*entity.User, error)
}
