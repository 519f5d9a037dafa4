package repository

import (
	"errors"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
)

// ErrNotFound is returned by repositories when no row matches a lookup,
// update or delete. Business rules live in the services, not here.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	GetByRole(role entity.Role) (*entity.User, error)
}
