package service

import (
	"context"
	"testing"

	"food_delivery/internal/dbtest"
	"food_delivery/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, username string) domain.User {
	t.Helper()
	user := domain.User{Username: username, Email: username + "@x.com", Password: "hash", Cart: []domain.CartLine{}}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createFood(t *testing.T, db *gorm.DB, name, category string) domain.Food {
	t.Helper()
	food := domain.Food{Name: name, Category: category, Image: "https://img.example/" + name, Price: 5}
	require.NoError(t, db.Create(&food).Error)
	return food
}

func newCartFixture(t *testing.T) (*CartService, *gorm.DB, context.Context) {
	t.Helper()
	db := dbtest.New(t)
	return NewCartService(db), db, context.Background()
}
