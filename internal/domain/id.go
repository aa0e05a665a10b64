package domain

import (
	"errors" // Error construction
	"strings"

	"github.com/google/uuid" // UUID parsing and generation
)

// ErrInvalidID is returned for identifiers that are not valid UUIDs
var ErrInvalidID = errors.New("invalid id")

// NewID returns a fresh identifier in canonical form
func NewID() string {
	return uuid.NewString()
}

// CanonicalID normalizes any accepted UUID spelling (upper case, braces, urn:uuid:
// prefix, bare 32 hex digits) to the lower-case hyphenated form used in storage.
func CanonicalID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", ErrInvalidID
	}
	return parsed.String(), nil
}

// SameID reports whether two identifiers name the same record
func SameID(a, b string) bool {
	ca, errA := CanonicalID(a)
	cb, errB := CanonicalID(b)
	if errA != nil || errB != nil {
		return a == b // Fall back to raw comparison for legacy values
	}
	return ca == cb
}
