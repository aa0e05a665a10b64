package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenTTL is the lifetime of every issued token
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned when a token fails verification
var ErrInvalidToken = errors.New("invalid or expired token")

// UserClaims are carried by end-user tokens
type UserClaims struct {
	ID                   string `json:"id"`       // User ID
	Username             string `json:"username"` // Username
	jwt.RegisteredClaims        // Standard JWT claims
}

// AdminClaims are carried by admin tokens
type AdminClaims struct {
	Username             string `json:"username"` // Admin username
	jwt.RegisteredClaims        // Standard JWT claims
}

// registered returns the standard claims for a token issued now
func registered() jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)), // Token expires in 24 hours
		IssuedAt:  jwt.NewNumericDate(now),               // Issued at current time
	}
}

// GenerateUserJWT creates a token for an end user
func GenerateUserJWT(id, username, secret string) (string, error) {
	claims := UserClaims{ID: id, Username: username, RegisteredClaims: registered()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// GenerateAdminJWT creates a token for an admin
func GenerateAdminJWT(username, secret string) (string, error) {
	claims := AdminClaims{Username: username, RegisteredClaims: registered()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseUserJWT parses and validates an end-user token
func ParseUserJWT(tokenStr, secret string) (*UserClaims, error) {
	claims := &UserClaims{}
	if err := parse(tokenStr, secret, claims); err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken // Admin tokens carry no id
	}
	return claims, nil
}

// ParseAdminJWT parses and validates an admin token
func ParseAdminJWT(tokenStr, secret string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	if err := parse(tokenStr, secret, claims); err != nil {
		return nil, err
	}
	if claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// parse verifies the HS256 signature and expiry of tokenStr into claims
func parse(tokenStr, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	// Check for parsing errors
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
