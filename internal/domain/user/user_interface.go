package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access. Lookups return
// (nil, nil) when no record matches. Save inserts new records and updates
// existing ones through the same path, and returns ErrDataDuplicated when the
// store's uniqueness constraints reject the write.
type UserRepository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, u *User) error
}

// UserService defines the interface for user business logic.
type UserService interface {
	GetUsers(ctx context.Context) ([]User, error)
	ValidateAndGetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	ValidateAndGetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*User, error)
}
