package user

import (
	"errors"
	"fmt"
)

// ErrDataDuplicated signals that a save would violate username or email
// uniqueness. The store reports a single constraint-violation signal, so the
// error does not say which field collided.
var ErrDataDuplicated = errors.New("username and/or email already exists")

// NotFoundError reports a lookup that matched no live user.
type NotFoundError struct {
	Key   string // lookup key name, "id" or "username"
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User with %s '%s' doesn't exist.", e.Key, e.Value)
}

// NewNotFoundError builds a NotFoundError naming the lookup key.
func NewNotFoundError(key, value string) *NotFoundError {
	return &NotFoundError{Key: key, Value: value}
}
