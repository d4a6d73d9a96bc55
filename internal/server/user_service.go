package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/destinique/backend/internal/config"
	"github.com/destinique/backend/internal/db"
	"github.com/destinique/backend/internal/types"
)

// UserService provides business logic for account operations.
type UserService struct {
	store          Store
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store Store, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// toAPIUser converts db.User to types.User, excluding the password hash.
func toAPIUser(u *db.User) *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register creates a new account with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return toAPIUser(user), nil
}

// Login authenticates an account and returns its user data.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Same generic error whether the account is missing or the password is
	// wrong, so the endpoint does not leak which emails are registered.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIUser(user), nil
}

// UpdatePassword replaces the account password after verifying the current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, user.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
