package service

import (
	"strings"
	"testing"

	"food_delivery/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertLineAppendsAndOverwrites(t *testing.T) {
	svc, db, ctx := newCartFixture(t)
	user := createUser(t, db, "alice")
	food := createFood(t, db, "Pizza", "Italian")

	cart, err := svc.UpsertLine(ctx, user.ID, food.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLine{{FoodID: food.ID, Count: 5}}, cart)

	cart, err = svc.UpsertLine(ctx, user.ID, food.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLine{{FoodID: food.ID, Count: 2}}, cart)

	count, err := svc.GetCount(ctx, user.ID, food.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUpsertLineZeroRemoves(t *testing.T) {
	svc, db, ctx := newCartFixture(t)
	user := createUser(t, db, "alice")
	food := createFood(t, db, "Pizza", "Italian")

	_, err := svc.UpsertLine(ctx, user.ID, food.ID, 3)
	require.NoError(t, err)
	cart, err := svc.UpsertLine(ctx, user.ID, food.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart)

	count, err := svc.GetCount(ctx, user.ID, food.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Removing an absent line is a no-op.
	cart, err = svc.UpsertLine(ctx, user.ID, food.ID, -4)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestUpsertLineKeepsOrder(t *testing.T) {
	svc, db, ctx := newCartFixture(t)
	user := createUser(t, db, "alice")
	a := createFood(t, db, "Pizza", "Italian")
	b := createFood(t, db, "Sushi", "Japanese")

	_, err := svc.UpsertLine(ctx, user.ID, a.ID, 1)
	require.NoError(t, err)
	_, err = svc.UpsertLine(ctx, user.ID, b.ID, 2)
	require.NoError(t, err)
	cart, err := svc.UpsertLine(ctx, user.ID, a.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLine{{FoodID: a.ID, Count: 7}, {FoodID: b.ID, Count: 2}}, cart)
}

func TestUpsertLineErrors(t *testing.T) {
	svc, db, ctx := newCartFixture(t)
	user := createUser(t, db, "alice")

	_, err := svc.UpsertLine(ctx, user.ID, "", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpsertLine(ctx, user.ID, "bogus", 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertLine(ctx, domain.NewID(), domain.NewID(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartIDComparisonIsRepresentationInvariant(t *testing.T) {
	svc, db, ctx := newCartFixture(t)
	user := createUser(t, db, "alice")
	food := createFood(t, db, "Pizza", "Italian")
	upper := strings.ToUpper(food.ID)
	bare := strings.ReplaceAll(food.ID, "-", "")

	_, err := svc.UpsertLine(ctx, user.ID, upper, 4)
	require.NoError(t, err)
	cart, err := svc.UpsertLine(ctx, user.ID, "{"+food.ID+"}", 6)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, food.ID, cart[0].FoodID)

	count, err := svc.GetCount(ctx, user.ID, bare)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	populated, err := svc.RemoveLine(ctx, user.ID, "urn:uuid:"+upper)
	require.NoError(t, err)
	assert.Empty(t, populated)
}

func TestGetCartPopulates(t *testing.T) {
	svc, db, ctx := newCartFixture(t)
	user := createUser(t, db, "alice")
	food := createFood(t, db, "Pizza", "Italian")
	gone := createFood(t, db, "Soup", "Starters")

	_, err := svc.UpsertLine(ctx, user.ID, food.ID, 2)
	require.NoError(t, err)
	_, err = svc.UpsertLine(ctx, user.ID, gone.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&domain.Food{}, "id = ?", gone.ID).Error)

	cart, err := svc.GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	require.NotNil(t, cart[0].Food)
	assert.Equal(t, "Pizza", cart[0].Food.Name)
	assert.Equal(t, 2, cart[0].Count)
	assert.Nil(t, cart[1].Food)
}

func TestGetCartUnknownUserIsEmpty(t *testing.T) {
	svc, _, ctx := newCartFixture(t)
	cart, err := svc.GetCart(ctx, domain.NewID())
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestGetCountUnknownUser(t *testing.T) {
	svc, _, ctx := newCartFixture(t)
	_, err := svc.GetCount(ctx, domain.NewID(), domain.NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearCart(t *testing.T) {
	svc, db, ctx := newCartFixture(t)
	user := createUser(t, db, "alice")
	food := createFood(t, db, "Pizza", "Italian")
	_, err := svc.UpsertLine(ctx, user.ID, food.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, user.ID))
	cart, err := svc.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	assert.ErrorIs(t, svc.ClearCart(ctx, domain.NewID()), ErrNotFound)
	_, err = svc.RemoveLine(ctx, domain.NewID(), food.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
