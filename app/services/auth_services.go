package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/config"
	"github.com/shashiranjanraj/leadhub/pkg/auth"
	"github.com/shashiranjanraj/leadhub/pkg/event"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("services: invalid email or password")
	ErrEmailTaken         = errors.New("services: email already registered")
)

// TokenPair is the login/register response payload.
type TokenPair struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account. The role is never taken from the request;
// it comes from the ADMIN_EMAILS allow-list.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (TokenPair, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return TokenPair{}, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return TokenPair{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return TokenPair{}, fmt.Errorf("services: hash password: %w", err)
	}

	user := models.User{
		Email:       email,
		Password:    hash,
		DisplayName: displayName,
		Role:        roleFor(email),
		CreatedAt:   time.Now(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return TokenPair{}, err
	}

	event.FireAsync("user.registered", user)
	return s.issue(user)
}

// Login authenticates and re-derives the role from the allow-list. A stale
// stored role is corrected in place so a removed admin loses access on the
// next login, not at some future migration.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return TokenPair{}, ErrInvalidCredentials
	}

	if want := roleFor(user.Email); user.Role != want {
		logger.WithCtx(ctx).Info("auth: correcting stored role",
			"user", user.Email, "from", user.Role, "to", want)
		if err := s.users.UpdateRole(ctx, user.ID, want); err != nil {
			return TokenPair{}, err
		}
		user.Role = want
	}

	return s.issue(user)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := auth.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	return s.issue(user)
}

// Me returns the authenticated user's record.
func (s *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issue(user models.User) (TokenPair, error) {
	access, err := auth.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("services: sign token: %w", err)
	}
	refresh, err := auth.GenerateRefreshToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return TokenPair{}, fmt.Errorf("services: sign refresh token: %w", err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

func roleFor(email string) string {
	if config.IsAdminEmail(email) {
		return models.RoleAdmin
	}
	return models.RoleCustomer
}
