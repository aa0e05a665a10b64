package domain

import (
	"time" // Creation timestamps

	"gorm.io/gorm" // GORM ORM library
)

// Recognized order statuses
const (
	StatusInProcess      = "order in process"
	StatusOutForDelivery = "out for delivery"
	StatusDelivered      = "delivered"
)

// IsValidStatus reports whether s is one of the recognized order statuses
func IsValidStatus(s string) bool {
	switch s {
	case StatusInProcess, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Order Model
type Order struct {
	ID        string      `gorm:"primaryKey;size:36" json:"id"`                    // Primary key
	Items     []OrderItem `gorm:"serializer:json;type:text" json:"items"`          // Snapshot of ordered items
	Address   Address     `gorm:"embedded;embeddedPrefix:address_" json:"address"` // Delivery address
	Status    string      `gorm:"size:32;not null" json:"status"`                  // Delivery status
	CreatedAt time.Time   `json:"createdAt"`                                       // Checkout time
	UserID    string      `gorm:"size:36;index;not null" json:"userId"`            // Owner
}

// OrderItem is a copy of the food fields taken at checkout
type OrderItem struct {
	Name     string  `json:"name"`     // Food name at checkout
	Image    string  `json:"image"`    // Food image at checkout
	Price    float64 `json:"price"`    // Unit price at checkout
	Quantity int     `json:"quantity"` // Ordered quantity
}

// Address is the delivery destination of an order
type Address struct {
	FirstName string `json:"firstName"` // Recipient first name
	LastName  string `json:"lastName"`  // Recipient last name
	City      string `json:"city"`      // City
	Pincode   string `json:"pincode"`   // Postal code
	Phone     string `json:"phone"`     // Contact phone
}

// BeforeCreate assigns an id and default status to new orders
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = NewID()
	}
	if o.Status == "" {
		o.Status = StatusInProcess
	}
	return nil
}
