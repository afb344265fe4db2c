package users

import (
	"context"
	"sync"

	"centralkitchen/internal/entities"
	"centralkitchen/internal/service/auth"
)

// Repository is the in-memory user directory, seeded at startup and
// extended by registration.
type Repository struct {
	mu      sync.RWMutex
	byEmail map[string]entities.User
}

func New(seed []entities.User) *Repository {
	byEmail := make(map[string]entities.User, len(seed))
	for _, user := range seed {
		byEmail[user.Email] = user
	}
	return &Repository{byEmail: byEmail}
}

func (r *Repository) Create(_ context.Context, user entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return auth.ErrEmailExists
	}

	r.byEmail[user.Email] = user
	return nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}

	clone := user
	return &clone, nil
}
