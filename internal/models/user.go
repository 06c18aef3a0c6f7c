package models

// User represents a family member who may be assigned to buy, or have bought, items.
// Item relationships are navigated through the foreign keys on Item, never stored
// as owned collections here.
type User struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// CreateUserRequest is the payload for adding a family member.
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}
