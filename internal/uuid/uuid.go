// Package uuid wraps ID generation behind an interface so tests can
// pin the IDs a repository assigns.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import "github.com/google/uuid"

// Generator produces unique IDs.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with google/uuid.
type GoogleUUIDGenerator struct{}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator.
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// New generates a new UUID string.
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}
