// Package uid provides ID generation behind small interfaces.
package uid

import "github.com/google/uuid"

// StringID generates string identifiers.
type StringID interface {
	// Generate returns a new unique string ID.
	Generate() string
}

// UUID generates RFC 4122 UUID strings.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string, preferring time-ordered v7.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString() // fallback: uuidV4
	}
	return id.String()
}
