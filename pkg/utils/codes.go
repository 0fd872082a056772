package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestID generates a request correlation ID
func NewRequestID() string {
	return uuid.New().String()
}

// GenerateProductCode generates a unique product code
func GenerateProductCode() string {
	return "PROD-" + strings.ToUpper(uuid.New().String()[:8])
}
