package models

import "time"

// Item status values, derived from BoughtDate on read.
const (
	StatusToBuy  = "ToBuy"
	StatusBought = "Bought"
)

// Item represents a shopping-list entry. AssignedUserID points at the member who
// intends to buy it, BuyerID at the member who actually did. BuyerID and BoughtDate
// are always set together by the mark-bought operation; the presence of BoughtDate
// is the sole source of truth for bought/unbought state.
type Item struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"size:100;not null"`
	Quantity       int        `json:"quantity" gorm:"not null;default:1"`
	AssignedUserID *uint      `json:"assignedUserId" gorm:"index"`
	AssignedUser   *User      `json:"-" gorm:"foreignKey:AssignedUserID"`
	BuyerID        *uint      `json:"buyerId" gorm:"index"`
	Buyer          *User      `json:"-" gorm:"foreignKey:BuyerID"`
	BoughtDate     *time.Time `json:"boughtDate"`
}

// Status reports "Bought" when the item has a bought date and "ToBuy" otherwise.
func (i *Item) Status() string {
	if i.BoughtDate != nil {
		return StatusBought
	}
	return StatusToBuy
}

// CreateItemRequest is the payload for adding an item. Quantity is a pointer so an
// absent field can be defaulted to 1 before range validation.
type CreateItemRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Quantity       *int   `json:"quantity" validate:"omitempty,min=1,max=100"`
	AssignedUserID *uint  `json:"assignedUserId"`
}

// MarkBoughtRequest is the payload for marking an item bought.
type MarkBoughtRequest struct {
	BuyerID uint `json:"buyerId" validate:"required"`
}

// ItemResponse is the expanded item representation returned by the API: raw item
// fields plus the joined user names and the derived status.
type ItemResponse struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Quantity         int        `json:"quantity"`
	AssignedUserID   *uint      `json:"assignedUserId"`
	AssignedUserName *string    `json:"assignedUserName"`
	BuyerID          *uint      `json:"buyerId"`
	BuyerName        *string    `json:"buyerName"`
	BoughtDate       *time.Time `json:"boughtDate"`
	Status           string     `json:"status"`
}

// ToResponse builds the expanded representation from an item with preloaded
// associations. Names stay nil when the reference is unset.
func (i *Item) ToResponse() ItemResponse {
	resp := ItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Quantity:       i.Quantity,
		AssignedUserID: i.AssignedUserID,
		BuyerID:        i.BuyerID,
		BoughtDate:     i.BoughtDate,
		Status:         i.Status(),
	}
	if i.AssignedUser != nil {
		resp.AssignedUserName = &i.AssignedUser.Name
	}
	if i.Buyer != nil {
		resp.BuyerName = &i.Buyer.Name
	}
	return resp
}
