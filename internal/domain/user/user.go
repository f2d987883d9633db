package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted user record. Username and email are unique across
// all live records; uniqueness is enforced by the store's constraints.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Birthday  Date      `json:"birthday" gorm:"type:date"`
	CreatedOn time.Time `json:"created_on" gorm:"autoCreateTime"`
	UpdatedOn time.Time `json:"updated_on" gorm:"autoUpdateTime"`
}

// CreateUserRequest carries the fields a caller provides when creating a user.
// The id and timestamps are assigned at persistence time.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Birthday Date   `json:"birthday" validate:"omitempty,beforetoday"`
}

// UpdateUserRequest carries a sparse field-set. A nil field was absent from
// the request and leaves the stored value untouched; a non-nil field always
// overwrites, so a provided-but-blank value is rejected by validation rather
// than treated as absent.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitnil,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitnil,min=1,email"`
	Birthday *Date   `json:"birthday,omitempty" validate:"omitnil,beforetoday"`
}

// ApplyTo merges the fields present in the request onto the given user.
func (r *UpdateUserRequest) ApplyTo(u *User) {
	if r.Username != nil {
		u.Username = *r.Username
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Birthday != nil {
		u.Birthday = *r.Birthday
	}
}

// UserResponse is the wire representation of a user.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Birthday Date      `json:"birthday"`
}

// NewUser creates a new user with a generated ID and matching timestamps.
func NewUser(username, email string, birthday Date) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Birthday:  birthday,
		CreatedOn: now,
		UpdatedOn: now,
	}
}

// ToResponse maps the user to its wire representation.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Birthday: u.Birthday,
	}
}
