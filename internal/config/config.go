package config

import (
	"errors"  // For validation errors
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string // Application port
	DBDriver       string // Database driver: mysql or postgres
	DBUser         string // Database user
	DBPassword     string // Database password
	DBHost         string // Database host
	DBPort         string // Database port
	DBName         string // Database name
	UserJWTSecret  string // Secret for end-user tokens
	AdminJWTSecret string // Secret for admin tokens
	RedisAddr      string // Redis server address
	RedisPass      string // Redis password
	RedisDB        int    // Redis database number
	IsProd         bool   // Is production environment
	LogLevel       string // Logrus level name
	AdminUsername  string // Admin bootstrapped by the migrate command
	AdminPassword  string // Password of the bootstrapped admin
	SeedFile       string // Optional YAML fixture loaded by the migrate command
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getEnv("APP_PORT", "5555"),     // Application port
		DBDriver:       getEnv("DB_DRIVER", "mysql"),   // Database driver
		DBUser:         os.Getenv("DB_USER"),           // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:         getEnv("DB_HOST", "localhost"), // Database host
		DBPort:         os.Getenv("DB_PORT"),           // Database port
		DBName:         os.Getenv("DB_NAME"),           // Database name
		UserJWTSecret:  os.Getenv("USER_JWT_SECRET"),   // User token secret
		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),  // Admin token secret
		RedisAddr:      os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:        redisDB,                        // Redis database number
		IsProd:         os.Getenv("IS_PROD") == "true", // Is production environment
		LogLevel:       getEnv("LOG_LEVEL", "info"),    // Log level
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),    // Bootstrap admin username
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),    // Bootstrap admin password
		SeedFile:       os.Getenv("SEED_FILE"),         // Seed fixture path
	}
}

// Validate reports configuration the server cannot start without
func (c *Config) Validate() error {
	if c.UserJWTSecret == "" || c.AdminJWTSecret == "" {
		return errors.New("USER_JWT_SECRET and ADMIN_JWT_SECRET must be set")
	}
	if c.UserJWTSecret == c.AdminJWTSecret {
		return errors.New("USER_JWT_SECRET and ADMIN_JWT_SECRET must differ")
	}
	if c.DBDriver != "mysql" && c.DBDriver != "postgres" {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		port := c.DBPort
		if port == "" {
			port = "5432" // Default postgres port
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port)
	}
	port := c.DBPort
	if port == "" {
		port = "3306" // Default mysql port
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true"
}

// getEnv returns the variable or a fallback when it is unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
