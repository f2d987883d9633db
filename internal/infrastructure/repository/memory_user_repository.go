package repository

import (
	"context"
	"sync"
	"time"

	"user-service/internal/domain/user"

	"github.com/google/uuid"
)

// memoryUserRepository is an in-memory implementation of UserRepository,
// used by tests and by the server's mock mode. It enforces the same
// username/email uniqueness rules the database constraints do.
type memoryUserRepository struct {
	users map[uuid.UUID]user.User
	mutex sync.RWMutex
}

// NewMemoryUserRepository creates a new in-memory user repository.
func NewMemoryUserRepository() user.UserRepository {
	return &memoryUserRepository{
		users: make(map[uuid.UUID]user.User),
	}
}

func (r *memoryUserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	users := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, nil
	}
	return &u, nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// Save inserts or updates under a single lock, mirroring the atomic
// check-and-write the database constraint gives the real repository. A
// record never conflicts with its own stored values.
func (r *memoryUserRepository) Save(ctx context.Context, u *user.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for id, existing := range r.users {
		if id == u.ID {
			continue
		}
		if existing.Username == u.Username || existing.Email == u.Email {
			return user.ErrDataDuplicated
		}
	}

	if _, exists := r.users[u.ID]; exists {
		u.UpdatedOn = time.Now()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, u *user.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.users, u.ID)
	return nil
}
