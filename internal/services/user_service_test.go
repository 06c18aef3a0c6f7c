package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repositories"
	"shoppinglist/internal/services"
)

func TestUserService_GetAllUsers(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewUserService(mockUsers, nil)

	expected := []models.User{
		{ID: 1, Name: "Anna"},
		{ID: 2, Name: "Ben"},
	}
	mockUsers.On("GetAll").Return(expected, nil).Once()

	users, err := service.GetAllUsers()

	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	mockUsers.AssertExpectations(t)
}

func TestUserService_CreateUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewUserService(mockUsers, mockEvents)

	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = 1
	}).Return(nil).Once()
	mockEvents.On("Publish", "user.created", mock.Anything).Return(nil).Once()

	user, err := service.CreateUser(models.CreateUserRequest{Name: "Anna"})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Anna", user.Name)
	mockUsers.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestUserService_CreateUser_EmptyName(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := services.NewUserService(mockUsers, nil)

	for _, name := range []string{"", "   "} {
		user, err := service.CreateUser(models.CreateUserRequest{Name: name})
		assert.Nil(t, user)
		var vErr *services.ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_DeleteUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewUserService(mockUsers, mockEvents)

	mockUsers.On("Delete", uint(1)).Return(nil).Once()
	mockEvents.On("Publish", "user.deleted", mock.Anything).Return(nil).Once()
	assert.NoError(t, service.DeleteUser(1))

	mockUsers.On("Delete", uint(99)).Return(repositories.ErrUserNotFound).Once()
	assert.ErrorIs(t, service.DeleteUser(99), repositories.ErrUserNotFound)

	// No event for a failed deletion.
	mockEvents.AssertNumberOfCalls(t, "Publish", 1)
	mockUsers.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}
