package domain

import "gorm.io/gorm" // GORM ORM library

// AdminUser Model
type AdminUser struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`                  // Primary key
	Username string `gorm:"size:191;uniqueIndex;not null" json:"username"` // Unique username
	Password string `gorm:"not null" json:"-"`                             // Hashed password
}

// BeforeCreate assigns an id to new admins
func (a *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}
