package domain

import "gorm.io/gorm" // GORM ORM library

// User Model
type User struct {
	ID       string     `gorm:"primaryKey;size:36" json:"id"`                  // Primary key
	Username string     `gorm:"size:191;uniqueIndex;not null" json:"username"` // Unique username
	Email    string     `gorm:"size:191;uniqueIndex;not null" json:"email"`    // Unique email
	Password string     `gorm:"not null" json:"-"`                             // Hashed password
	Cart     []CartLine `gorm:"serializer:json;type:text" json:"cart"`         // Ordered cart lines, stored as one document
}

// CartLine is one (food, quantity) pair in a user's cart
type CartLine struct {
	FoodID string `json:"foodId"` // Canonical food id
	Count  int    `json:"count"`  // Quantity, always positive once persisted
}

// BeforeCreate assigns an id to new users
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
