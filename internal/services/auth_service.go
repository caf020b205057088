package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "taskforge.com/taskforge/internal/data_models"
	apperrors "taskforge.com/taskforge/internal/errors"
	model "taskforge.com/taskforge/internal/models"
	repository "taskforge.com/taskforge/internal/repositories"
	"taskforge.com/taskforge/internal/sessions"
)

type AuthOptions struct {
	SessionTTL  time.Duration
	RememberTTL time.Duration
	HashCost    int
}

type AuthService struct {
	users    *repository.UserRepository
	sessions sessions.Store
	opts     AuthOptions
}

func NewAuthService(users *repository.UserRepository, store sessions.Store, opts AuthOptions) *AuthService {
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:    users,
		sessions: store,
		opts:     opts,
	}
}

// Register expects a validated request.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	req.Email = strings.ToLower(req.Email)
	taken, err := s.users.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailTaken()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.opts.HashCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	// A concurrent registration can win between the lookup and the insert.
	if err := s.users.Create(ctx, user); errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperrors.ErrEmailTaken()
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// StartSession returns the new session token and how long it lives.
func (s *AuthService) StartSession(ctx context.Context, userID uint, remember bool) (string, time.Duration, error) {
	ttl := s.opts.SessionTTL
	if remember {
		ttl = s.opts.RememberTTL
	}

	token, err := s.sessions.Create(ctx, userID, ttl)
	if err != nil {
		return "", 0, err
	}
	return token, ttl, nil
}

func (s *AuthService) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}

// Authenticate resolves a session token to its user. Expired sessions and
// deleted users both report ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return nil, apperrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, err
}
