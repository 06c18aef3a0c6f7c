package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repositories"
)

// ItemService handles business logic related to shopping-list items.
type ItemService struct {
	itemRepo repositories.ItemRepository
	userRepo repositories.UserRepository
	events   EventPublisher
	validate *validator.Validate
}

// NewItemService creates a new ItemService. events may be nil, in which case no
// domain events are published.
func NewItemService(itemRepo repositories.ItemRepository, userRepo repositories.UserRepository, events EventPublisher) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		userRepo: userRepo,
		events:   events,
		validate: validator.New(),
	}
}

// GetAllItems retrieves all items as expanded representations with the
// assigned-user and buyer names resolved.
func (s *ItemService) GetAllItems() ([]models.ItemResponse, error) {
	items, err := s.itemRepo.GetAll()
	if err != nil {
		return nil, err
	}

	responses := make([]models.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, items[i].ToResponse())
	}
	return responses, nil
}

// CreateItem validates and persists a new item. The item starts unbought; an
// assigned user, if given, must exist.
func (s *ItemService) CreateItem(req models.CreateItemRequest) (*models.ItemResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, itemValidationError(err)
	}

	if req.AssignedUserID != nil {
		if _, err := s.userRepo.GetByID(*req.AssignedUserID); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, ErrInvalidAssignment
			}
			return nil, err
		}
	}

	item := &models.Item{
		Name:           req.Name,
		Quantity:       1,
		AssignedUserID: req.AssignedUserID,
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	// Reload so the response carries the assigned-user name.
	created, err := s.itemRepo.GetByID(item.ID)
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	s.publish("item.created", resp)
	return &resp, nil
}

// MarkBought records that a user bought the item, setting the buyer and the
// bought timestamp together. Re-marking an already-bought item overwrites the
// prior buyer and timestamp.
func (s *ItemService) MarkBought(id uint, req models.MarkBoughtRequest) (*models.ItemResponse, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// A zero or absent buyer id can never reference a user.
	if err := s.validate.Struct(req); err != nil {
		return nil, ErrInvalidBuyer
	}

	if _, err := s.userRepo.GetByID(req.BuyerID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidBuyer
		}
		return nil, err
	}

	now := time.Now().UTC()
	item.BuyerID = &req.BuyerID
	item.BoughtDate = &now

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}

	updated, err := s.itemRepo.GetByID(item.ID)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse()
	s.publish("item.bought", resp)
	return &resp, nil
}

// DeleteItem removes an item regardless of its bought state.
func (s *ItemService) DeleteItem(id uint) error {
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}

	s.publish("item.deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *ItemService) publish(event string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

// itemValidationError converts validator output into a human-readable 400 message.
func itemValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			switch fe.Field() {
			case "Name":
				if fe.Tag() == "required" {
					return &ValidationError{Message: "name is required"}
				}
				return &ValidationError{Message: "name must be at most 100 characters"}
			case "Quantity":
				return &ValidationError{Message: "quantity must be between 1 and 100"}
			}
		}
	}
	return &ValidationError{Message: fmt.Sprintf("invalid request: %v", err)}
}
