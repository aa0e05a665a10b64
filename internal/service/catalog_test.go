package service

import (
	"context"
	"testing"

	"food_delivery/internal/dbtest"
	"food_delivery/internal/domain"
	"food_delivery/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(foods []domain.Food) []string {
	out := make([]string, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.Name)
	}
	return out
}

func TestListFoodSearch(t *testing.T) {
	db := dbtest.New(t)
	svc := NewCatalogService(db, nil)
	ctx := context.Background()
	createFood(t, db, "Margherita Pizza", "Italian")
	createFood(t, db, "Salmon Nigiri", "Japanese")
	createFood(t, db, "Tiramisu", "Italian Desserts")
	createFood(t, db, "100% Juice", "Drinks")

	all, err := svc.ListFood(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	byName, err := svc.ListFood(ctx, "PIZZ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Margherita Pizza"}, names(byName))

	byCategory, err := svc.ListFood(ctx, "italian")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Margherita Pizza", "Tiramisu"}, names(byCategory))

	substring, err := svc.ListFood(ctx, "igir")
	require.NoError(t, err)
	assert.Equal(t, []string{"Salmon Nigiri"}, names(substring))

	literal, err := svc.ListFood(ctx, "%")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Juice"}, names(literal))
}

func TestListFoodByCategory(t *testing.T) {
	db := dbtest.New(t)
	svc := NewCatalogService(db, nil)
	createFood(t, db, "Margherita Pizza", "Italian")
	createFood(t, db, "Tiramisu", "Italian Desserts")
	createFood(t, db, "Pizza Roll", "Snacks")

	foods, err := svc.ListFoodByCategory(context.Background(), "ITALIAN")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Margherita Pizza", "Tiramisu"}, names(foods))
}

func TestCreateFoodValidation(t *testing.T) {
	svc := NewCatalogService(dbtest.New(t), nil)
	ctx := context.Background()
	price := 4.5

	_, err := svc.CreateFood(ctx, NewFood{Name: "Soup", Category: "Starters", Image: "img"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.CreateFood(ctx, NewFood{Name: "Soup", Price: &price, Image: "img"})
	assert.ErrorIs(t, err, ErrValidation)

	food, err := svc.CreateFood(ctx, NewFood{Name: "Soup", Category: "Starters", Image: "img", Price: &price})
	require.NoError(t, err)
	assert.NotEmpty(t, food.ID)
	assert.Equal(t, 4.5, food.Price)
}

func TestDeleteFoodIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	svc := NewCatalogService(db, nil)
	ctx := context.Background()
	food := createFood(t, db, "Soup", "Starters")

	require.NoError(t, svc.DeleteFood(ctx, food.ID))
	require.NoError(t, svc.DeleteFood(ctx, food.ID))
	require.NoError(t, svc.DeleteFood(ctx, "garbage"))

	all, err := svc.ListFood(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalogCacheInvalidation(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	db := dbtest.New(t)
	svc := NewCatalogService(db, rdb)
	ctx := context.Background()
	createFood(t, db, "Soup", "Starters")

	first, err := svc.ListFood(ctx, "")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, mr.Exists("catalog:food:0:all"))

	// Rows written behind the service stay invisible until the cache is invalidated.
	createFood(t, db, "Salad", "Starters")
	cached, err := svc.ListFood(ctx, "")
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	price := 3.0
	_, err = svc.CreateFood(ctx, NewFood{Name: "Bread", Category: "Sides", Image: "img", Price: &price})
	require.NoError(t, err)
	assert.False(t, mr.Exists("catalog:food:0:all"))

	fresh, err := svc.ListFood(ctx, "")
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}

func TestStaleFillAfterWriteIsNeverServed(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	db := dbtest.New(t)
	svc := NewCatalogService(db, rdb)
	ctx := context.Background()
	createFood(t, db, "Soup", "Starters")

	before, err := svc.ListFood(ctx, "")
	require.NoError(t, err)
	require.Len(t, before, 1)

	price := 3.0
	_, err = svc.CreateFood(ctx, NewFood{Name: "Bread", Category: "Sides", Image: "img", Price: &price})
	require.NoError(t, err)

	// A reader that queried before the write lands its fill after the invalidation.
	require.NoError(t, utils.SetCache(ctx, rdb, "catalog:food:0:all", before, utils.CacheTTL))

	after, err := svc.ListFood(ctx, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Soup", "Bread"}, names(after))
	assert.True(t, mr.Exists("catalog:food:1:all"))
}

func TestListMenuCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	db := dbtest.New(t)
	require.NoError(t, db.Create(&domain.Menu{MenuName: "Salads", MenuImage: "img"}).Error)
	svc := NewCatalogService(db, rdb)

	menu, err := svc.ListMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Salads", menu[0].MenuName)
	assert.True(t, mr.Exists("catalog:menu"))
}
