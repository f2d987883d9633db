package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"user-service/internal/domain/user"
	"user-service/pkg/logger"

	"github.com/google/uuid"
)

// userService implements the UserService interface. It owns the uniqueness
// and partial-merge rules; the authoritative uniqueness decision is made by
// the store's constraints at save time, so the service never pre-checks
// username or email before writing.
type userService struct {
	userRepo user.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo user.UserRepository) user.UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// GetUsers returns all persisted users in store-defined order.
func (s *userService) GetUsers(ctx context.Context) ([]user.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ValidateAndGetUserByID returns the user with the given id or a
// NotFoundError naming the id.
func (s *userService) ValidateAndGetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by id: %v", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.NewNotFoundError("id", id.String())
	}
	return u, nil
}

// ValidateAndGetUserByUsername returns the user with the given username or a
// NotFoundError naming the username.
func (s *userService) ValidateAndGetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		logger.Error("Failed to get user by username: %v", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, user.NewNotFoundError("username", username)
	}
	return u, nil
}

// CreateUser persists a new user. A collision on username or email surfaces
// as ErrDataDuplicated; the store signals one merged violation, so the error
// does not say which field collided.
func (s *userService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	logger.Info("Creating user with username: %s", req.Username)

	u := user.NewUser(req.Username, req.Email, req.Birthday)

	if err := s.saveUser(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User created successfully with ID: %s", u.ID)
	return u, nil
}

// UpdateUser merges the fields present in the request into the existing
// record and persists it through the same save path as create. Keeping a
// field's current value is not a conflict; only a collision with a different
// record is.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	logger.Info("Updating user with ID: %s", id)

	u, err := s.ValidateAndGetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(u)
	u.UpdatedOn = time.Now()

	if err := s.saveUser(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User updated successfully with ID: %s", u.ID)
	return u, nil
}

// DeleteUser removes the user and returns the record as it existed
// immediately before deletion.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	logger.Info("Deleting user with ID: %s", id)

	u, err := s.ValidateAndGetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, u); err != nil {
		logger.Error("Failed to delete user: %v", err)
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	logger.Info("User deleted successfully with ID: %s", id)
	return u, nil
}

func (s *userService) saveUser(ctx context.Context, u *user.User) error {
	if err := s.userRepo.Save(ctx, u); err != nil {
		if errors.Is(err, user.ErrDataDuplicated) {
			return err
		}
		logger.Error("Failed to save user: %v", err)
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
