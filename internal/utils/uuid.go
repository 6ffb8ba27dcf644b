package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers for new records.
//
// Identifiers are UUIDv7 so they sort by creation time; if the v7 generator
// fails a random v4 identifier is returned instead.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
