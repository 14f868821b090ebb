package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/onu-facilities/parts-tracker/internal/application/dto"
	"github.com/onu-facilities/parts-tracker/internal/domain"
	"github.com/onu-facilities/parts-tracker/internal/domain/entity"
	"github.com/onu-facilities/parts-tracker/internal/domain/repository"
)

// UseCase handles login, logout and current-user resolution. Sessions are
// opaque uuid tokens stored server-side; they live until explicit logout.
type UseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewUseCase builds the auth use case.
func NewUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *UseCase {
	return &UseCase{userRepo: userRepo, sessionRepo: sessionRepo}
}

// Login verifies username/password against the bcrypt hash and establishes
// a session. Returns the token and the session identity, or
// ErrInvalidCredentials without creating anything.
func (uc *UseCase) Login(in dto.LoginRequest) (string, *dto.SessionUserResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := &entity.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.sessionRepo.Set(token, session); err != nil {
		return "", nil, err
	}
	return token, sessionUser(session), nil
}

// Logout destroys the session for the token. Unknown tokens are fine.
func (uc *UseCase) Logout(token string) error {
	if token == "" {
		return nil
	}
	return uc.sessionRepo.Delete(token)
}

// CurrentUser resolves the token to the session identity, or
// ErrUnauthorized when the token is missing or unknown.
func (uc *UseCase) CurrentUser(token string) (*dto.SessionUserResponse, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessionRepo.Get(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	return sessionUser(session), nil
}

func sessionUser(s *entity.Session) *dto.SessionUserResponse {
	return &dto.SessionUserResponse{
		ID:       s.UserID,
		Username: s.Username,
		Name:     s.Name,
		Role:     s.Role,
	}
}
