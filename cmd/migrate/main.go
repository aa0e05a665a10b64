package main

import (
	"food_delivery/internal/config" // Custom import path (Config)
	"food_delivery/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	store, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	defer db.Close(store)

	if err := db.Migrate(store); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration

	// Optional bootstrap admin from the environment
	if cfg.AdminUsername != "" {
		if err := db.EnsureAdmin(store, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			logrus.Fatalf("admin bootstrap failed: %v", err)
		}
	}

	// Optional YAML fixture with admins, menu and food
	if cfg.SeedFile != "" {
		fx, err := db.LoadFixture(cfg.SeedFile)
		if err != nil {
			logrus.Fatalf("failed to load seed file: %v", err)
		}
		if err := db.Seed(store, fx); err != nil {
			logrus.Fatalf("seed failed: %v", err)
		}
	}
}
