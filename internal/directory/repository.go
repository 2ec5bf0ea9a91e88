// Package directory holds the user records that back the session store.
package directory

import (
	"context"
	"errors"

	"github.com/afrilink/platform_be/internal/models"
)

var ErrNotFound = errors.New("user not found")

// Repository is the user directory. Implementations return copies; callers
// never hold a pointer into the store.
type Repository interface {
	Get(ctx context.Context, id string) (*models.User, error)
	FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
}
