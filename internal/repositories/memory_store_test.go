package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shoppinglist/internal/models"
	"shoppinglist/internal/repositories"
)

func TestMemoryStore_UserCRUD(t *testing.T) {
	store := repositories.NewMemoryStore()
	users := store.Users()

	anna := &models.User{Name: "Anna"}
	assert.NoError(t, users.Create(anna))
	assert.Equal(t, uint(1), anna.ID)

	ben := &models.User{Name: "Ben"}
	assert.NoError(t, users.Create(ben))
	assert.Equal(t, uint(2), ben.ID)

	all, err := users.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Anna", all[0].Name)
	assert.Equal(t, "Ben", all[1].Name)

	got, err := users.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)

	_, err = users.GetByID(99)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	assert.NoError(t, users.Delete(2))
	assert.ErrorIs(t, users.Delete(2), repositories.ErrUserNotFound)
}

func TestMemoryStore_ItemCRUD(t *testing.T) {
	store := repositories.NewMemoryStore()
	users := store.Users()
	items := store.Items()

	anna := &models.User{Name: "Anna"}
	assert.NoError(t, users.Create(anna))

	item := &models.Item{Name: "Milk", Quantity: 2, AssignedUserID: &anna.ID}
	assert.NoError(t, items.Create(item))
	assert.Equal(t, uint(1), item.ID)

	got, err := items.GetByID(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)
	assert.NotNil(t, got.AssignedUser)
	assert.Equal(t, "Anna", got.AssignedUser.Name)
	assert.Nil(t, got.Buyer)

	now := time.Now().UTC()
	got.BuyerID = &anna.ID
	got.BoughtDate = &now
	assert.NoError(t, items.Update(got))

	updated, err := items.GetByID(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Anna", updated.Buyer.Name)
	assert.Equal(t, models.StatusBought, updated.Status())

	assert.NoError(t, items.Delete(item.ID))
	_, err = items.GetByID(item.ID)
	assert.ErrorIs(t, err, repositories.ErrItemNotFound)
	assert.ErrorIs(t, items.Delete(item.ID), repositories.ErrItemNotFound)
	assert.ErrorIs(t, items.Update(&models.Item{ID: 99, Name: "Ghost"}), repositories.ErrItemNotFound)
}

func TestMemoryStore_DeleteUserClearsItemReferences(t *testing.T) {
	store := repositories.NewMemoryStore()
	users := store.Users()
	items := store.Items()

	anna := &models.User{Name: "Anna"}
	ben := &models.User{Name: "Ben"}
	assert.NoError(t, users.Create(anna))
	assert.NoError(t, users.Create(ben))

	now := time.Now().UTC()
	assigned := &models.Item{Name: "Milk", Quantity: 1, AssignedUserID: &anna.ID}
	bought := &models.Item{Name: "Bread", Quantity: 1, BuyerID: &anna.ID, BoughtDate: &now}
	other := &models.Item{Name: "Eggs", Quantity: 1, AssignedUserID: &ben.ID}
	assert.NoError(t, items.Create(assigned))
	assert.NoError(t, items.Create(bought))
	assert.NoError(t, items.Create(other))

	assert.NoError(t, users.Delete(anna.ID))

	all, err := items.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	for _, item := range all {
		if item.AssignedUserID != nil {
			assert.NotEqual(t, anna.ID, *item.AssignedUserID)
		}
		if item.BuyerID != nil {
			assert.NotEqual(t, anna.ID, *item.BuyerID)
		}
	}

	// Losing the buyer reference does not revert the bought state.
	stillBought, err := items.GetByID(bought.ID)
	assert.NoError(t, err)
	assert.Nil(t, stillBought.BuyerID)
	assert.NotNil(t, stillBought.BoughtDate)
	assert.Equal(t, models.StatusBought, stillBought.Status())

	// Ben's item is untouched.
	bens, err := items.GetByID(other.ID)
	assert.NoError(t, err)
	assert.Equal(t, ben.ID, *bens.AssignedUserID)
}
