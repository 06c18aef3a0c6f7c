package repositories

import (
	"errors"

	"shoppinglist/internal/models"
)

// ErrUserNotFound is returned when an operation targets a missing user.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data access.
//
// Delete removes the user row and clears every item reference (assigned user,
// buyer) pointing at it, so no item is ever left dangling on a deleted user.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Delete(id uint) error
}
