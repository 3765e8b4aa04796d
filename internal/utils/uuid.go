package utils

import "github.com/google/uuid"

// UUIDGenerator produces random identifiers backed by the OS CSPRNG.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewSecret returns a fresh UUIDv4: 122 random bits in 16 bytes.
func (g *UUIDGenerator) NewSecret() (uuid.UUID, error) {
	return uuid.NewRandom()
}

// TraceID returns a time-ordered identifier for request tracing. It falls
// back to a random UUID if the clock sequence cannot be produced.
func (g *UUIDGenerator) TraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
