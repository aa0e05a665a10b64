package domain

import "gorm.io/gorm" // GORM ORM library

// Menu Model
type Menu struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"` // Primary key
	MenuName  string `gorm:"not null" json:"menu_name"`    // Display name
	MenuImage string `gorm:"not null" json:"menu_image"`   // Image URI
}

// TableName keeps the singular table name
func (Menu) TableName() string {
	return "menu"
}

// BeforeCreate assigns an id to new menu entries
func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}
