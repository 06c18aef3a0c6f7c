package repositories

import (
	"errors"

	"shoppinglist/internal/models"
)

// ErrItemNotFound is returned when an operation targets a missing item.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the interface for item data access. GetAll and GetByID
// return items with their assigned-user and buyer associations resolved.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByID(id uint) (*models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(id uint) error
}
