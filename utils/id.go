package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh UUID string for new records.
func GenerateID() string {
	return uuid.New().String()
}
