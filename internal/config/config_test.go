package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()
	assert.Equal(t, "5555", cfg.AppPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.IsProd)
}

func TestValidateRequiresDistinctSecrets(t *testing.T) {
	cfg := &Config{DBDriver: "mysql"}
	assert.Error(t, cfg.Validate())

	cfg.UserJWTSecret = "same"
	cfg.AdminJWTSecret = "same"
	assert.Error(t, cfg.Validate())

	cfg.AdminJWTSecret = "other"
	require.NoError(t, cfg.Validate())

	cfg.DBDriver = "oracle"
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBDriver: "mysql", DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "food"}
	assert.Equal(t, "u:p@tcp(db:3306)/food?charset=utf8mb4&parseTime=true", cfg.DSN())

	cfg.DBDriver = "postgres"
	cfg.DBPort = "6543"
	assert.Equal(t, "host=db user=u password=p dbname=food port=6543 sslmode=disable", cfg.DSN())
}
