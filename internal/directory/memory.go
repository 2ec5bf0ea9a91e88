package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/afrilink/platform_be/internal/models"
)

// MemoryRepository keeps users in insertion order.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []*models.User
}

func NewMemoryRepository(seed []models.User) *MemoryRepository {
	r := &MemoryRepository{users: make([]*models.User, 0, len(seed))}
	for i := range seed {
		r.users = append(r.users, seed[i].Clone())
	}
	return r
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.users[i].Clone(), nil
	}
	return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
}

// FindByEmailAndRole returns the first entry matching both fields exactly.
func (r *MemoryRepository) FindByEmailAndRole(_ context.Context, email string, role models.Role) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email && u.Role == role {
			return u.Clone(), nil
		}
	}
	return nil, fmt.Errorf("find %s as %s: %w", email, role, ErrNotFound)
}

// Insert appends without any uniqueness check on email.
func (r *MemoryRepository) Insert(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, u.Clone())
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(u.ID)
	if i < 0 {
		return fmt.Errorf("update %s: %w", u.ID, ErrNotFound)
	}
	r.users[i] = u.Clone()
	return nil
}

// Len is the number of directory entries.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *MemoryRepository) indexOf(id string) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
