package services

import (
	"log"
	"strings"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repositories"
)

// UserService handles business logic related to family members.
type UserService struct {
	userRepo repositories.UserRepository
	events   EventPublisher
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(userRepo repositories.UserRepository, events EventPublisher) *UserService {
	return &UserService{
		userRepo: userRepo,
		events:   events,
	}
}

// GetAllUsers retrieves all users with their raw stored fields.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if users == nil {
		// The API returns an empty array, not null.
		users = []models.User{}
	}
	return users, nil
}

// CreateUser validates and persists a new family member.
func (s *UserService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{Message: "name is required"}
	}

	user := &models.User{Name: req.Name}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.publish("user.created", user)
	return user, nil
}

// DeleteUser removes a family member. Items they were assigned to or bought stay
// in the list with those references cleared; the repository performs the cleanup
// together with the row deletion.
func (s *UserService) DeleteUser(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	s.publish("user.deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *UserService) publish(event string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
