package db

import (
	"errors" // Error matching
	"fmt"    // Error wrapping
	"os"     // Reading the fixture file

	"food_delivery/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gopkg.in/yaml.v3"           // Fixture format
	"gorm.io/gorm"               // GORM ORM library
)

// Fixture is the YAML layout accepted by Seed
type Fixture struct {
	Admins []FixtureAdmin `yaml:"admins"` // Admins with plain-text passwords
	Menu   []FixtureMenu  `yaml:"menu"`   // Menu entries
	Foods  []FixtureFood  `yaml:"foods"`  // Food items
}

// FixtureAdmin is an admin account in a fixture
type FixtureAdmin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// FixtureMenu is a menu entry in a fixture
type FixtureMenu struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// FixtureFood is a food item in a fixture
type FixtureFood struct {
	Name        string  `yaml:"name"`
	Image       string  `yaml:"image"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
}

// LoadFixture reads and decodes a YAML fixture file
func LoadFixture(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var fx Fixture
	if err := yaml.NewDecoder(file).Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &fx, nil
}

// Seed inserts fixture rows that are not present yet. Admins are matched by
// username, menu entries by name and food items by name and category, so
// running it twice is harmless.
func Seed(db *gorm.DB, fx *Fixture) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, a := range fx.Admins {
			if err := EnsureAdmin(tx, a.Username, a.Password); err != nil {
				return err
			}
		}
		for _, m := range fx.Menu {
			menu := domain.Menu{MenuName: m.Name, MenuImage: m.Image}
			if err := tx.Where("menu_name = ?", m.Name).FirstOrCreate(&menu).Error; err != nil {
				return err // Return error to rollback
			}
		}
		for _, f := range fx.Foods {
			food := domain.Food{Name: f.Name, Image: f.Image, Price: f.Price, Description: f.Description, Category: f.Category}
			if err := tx.Where("name = ? AND category = ?", f.Name, f.Category).FirstOrCreate(&food).Error; err != nil {
				return err
			}
		}
		logrus.WithFields(logrus.Fields{
			"admins": len(fx.Admins), // Admin count
			"menu":   len(fx.Menu),   // Menu count
			"foods":  len(fx.Foods),  // Food count
		}).Info("Seed applied")
		return nil
	})
}

// EnsureAdmin creates the admin account if the username is free
func EnsureAdmin(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		return errors.New("admin username and password are required")
	}
	var existing domain.AdminUser
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil // Already present
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.AdminUser{Username: username, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("username", username).Info("Admin created")
	return nil
}
