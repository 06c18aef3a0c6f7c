package repositories

import (
	"sort"
	"sync"

	"shoppinglist/internal/models"
)

// MemoryStore is an in-memory implementation of both repositories behind one
// lock, so user deletion can clear item references the same way the relational
// store does. Useful for running without a database and for tests.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[uint]models.User
	items      map[uint]models.Item
	nextUserID uint
	nextItemID uint
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[uint]models.User),
		items: make(map[uint]models.Item),
	}
}

// Users returns the UserRepository view of the store.
func (s *MemoryStore) Users() UserRepository { return &memoryUserRepository{store: s} }

// Items returns the ItemRepository view of the store.
func (s *MemoryStore) Items() ItemRepository { return &memoryItemRepository{store: s} }

type memoryUserRepository struct {
	store *MemoryStore
}

func (r *memoryUserRepository) GetAll() ([]models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepository) GetByID(id uint) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) Create(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Delete(id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}

	// Same cleanup rule as the relational store: null out references, keep items.
	for itemID, item := range s.items {
		changed := false
		if item.AssignedUserID != nil && *item.AssignedUserID == id {
			item.AssignedUserID = nil
			changed = true
		}
		if item.BuyerID != nil && *item.BuyerID == id {
			item.BuyerID = nil
			changed = true
		}
		if changed {
			s.items[itemID] = item
		}
	}

	delete(s.users, id)
	return nil
}

type memoryItemRepository struct {
	store *MemoryStore
}

// resolve attaches user associations, mirroring the GORM repository's preloads.
// Caller must hold at least a read lock.
func (r *memoryItemRepository) resolve(item models.Item) models.Item {
	s := r.store
	item.AssignedUser = nil
	item.Buyer = nil
	if item.AssignedUserID != nil {
		if u, ok := s.users[*item.AssignedUserID]; ok {
			item.AssignedUser = &u
		}
	}
	if item.BuyerID != nil {
		if u, ok := s.users[*item.BuyerID]; ok {
			item.Buyer = &u
		}
	}
	return item
}

func (r *memoryItemRepository) GetAll() ([]models.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, r.resolve(item))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryItemRepository) GetByID(id uint) (*models.Item, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	item = r.resolve(item)
	return &item, nil
}

func (r *memoryItemRepository) Create(item *models.Item) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextItemID++
	item.ID = s.nextItemID
	stored := *item
	stored.AssignedUser = nil
	stored.Buyer = nil
	s.items[item.ID] = stored
	return nil
}

func (r *memoryItemRepository) Update(item *models.Item) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return ErrItemNotFound
	}
	stored := *item
	stored.AssignedUser = nil
	stored.Buyer = nil
	s.items[item.ID] = stored
	return nil
}

func (r *memoryItemRepository) Delete(id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}
