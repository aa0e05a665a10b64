package domain

import "gorm.io/gorm" // GORM ORM library

// Food Model
type Food struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`            // Primary key
	Name        string  `gorm:"size:191;not null;index" json:"name"`     // Display name
	Image       string  `gorm:"not null" json:"image"`                   // Image URI
	Price       float64 `gorm:"not null;default:0" json:"price"`         // Unit price
	Description string  `json:"description"`                             // Free text
	Category    string  `gorm:"size:191;not null;index" json:"category"` // Category label
}

// BeforeCreate assigns an id to new food items
func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = NewID()
	}
	return nil
}
