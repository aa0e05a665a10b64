package service

import (
	"context"
	"testing"

	"food_delivery/internal/db"
	"food_delivery/internal/dbtest"
	"food_delivery/internal/domain"
	"food_delivery/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*AuthService, context.Context) {
	t.Helper()
	conn := dbtest.New(t)
	require.NoError(t, db.EnsureAdmin(conn, "root", "rootpw"))
	return NewAuthService(conn, "user-secret", "admin-secret"), context.Background()
}

func TestRegisterThenLogin(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	require.NoError(t, svc.Register(ctx, "alice", "a@x.com", "pw1"))

	token, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseUserJWT(token, "user-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	_, err = domain.CanonicalID(claims.ID)
	assert.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Login(ctx, "bob", "pw1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoginMatchesUsernameAsRegistered(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	require.NoError(t, svc.Register(ctx, " alice ", "a@x.com", "pw1"))

	token, err := svc.Login(ctx, " alice ", "pw1")
	require.NoError(t, err)
	claims, err := utils.ParseUserJWT(token, "user-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	_, err = svc.Login(ctx, "alice", "pw1")
	assert.NoError(t, err)
}

func TestDuplicateKeyIsTranslated(t *testing.T) {
	conn := dbtest.New(t)
	createUser(t, conn, "alice")

	err := conn.Create(&domain.User{Username: "alice", Email: "other@x.com", Password: "hash"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRegisterLosingRaceIsConflict(t *testing.T) {
	conn := dbtest.New(t)
	svc := NewAuthService(conn, "user-secret", "admin-secret")

	// Another registration commits between the availability checks and the insert.
	raced := false
	require.NoError(t, conn.Callback().Create().Before("gorm:create").Register("race:users", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "users" {
			return
		}
		raced = true
		_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			"INSERT INTO users (id, username, email, password, cart) VALUES (?, ?, ?, ?, ?)",
			domain.NewID(), "alice", "first@x.com", "hash", "[]")
		require.NoError(t, err)
	}))

	err := svc.Register(context.Background(), "alice", "a@x.com", "pw1")
	require.True(t, raced)
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Username already exists")
}

func TestRegisterStoresBcryptHash(t *testing.T) {
	conn := dbtest.New(t)
	svc := NewAuthService(conn, "user-secret", "admin-secret")
	require.NoError(t, svc.Register(context.Background(), "alice", "a@x.com", "pw1"))

	var user domain.User
	require.NoError(t, conn.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "pw1", user.Password)
	cost, err := bcrypt.Cost([]byte(user.Password))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)
}

func TestRegisterConflicts(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	require.NoError(t, svc.Register(ctx, "alice", "a@x.com", "pw1"))

	err := svc.Register(ctx, "alice", "other@x.com", "pw2")
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Username already exists")

	err = svc.Register(ctx, "bob", "a@x.com", "pw2")
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Email already registered")

	assert.ErrorIs(t, svc.Register(ctx, "", "c@x.com", "pw"), ErrValidation)
}

func TestAdminLogin(t *testing.T) {
	svc, ctx := newAuthFixture(t)

	token, err := svc.AdminLogin(ctx, "root", "rootpw")
	require.NoError(t, err)
	claims, err := utils.ParseAdminJWT(token, "admin-secret")
	require.NoError(t, err)
	assert.Equal(t, "root", claims.Username)

	_, err = svc.AdminLogin(ctx, "root", "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.AdminLogin(ctx, "ghost", "rootpw")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
