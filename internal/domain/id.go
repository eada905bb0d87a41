package domain

import (
	"fmt"
	"regexp"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)

// MaxIDLength bounds project, experiment, and run identifiers.
const MaxIDLength = 256

// ValidateID checks a client supplied identifier.
// ID: ^[a-zA-Z0-9_.:-]+$, 1-256 chars.
func ValidateID(resource, id string) error {
	if id == "" {
		return fmt.Errorf("%s ID is required", resource)
	}
	if len(id) > MaxIDLength {
		return fmt.Errorf("%s ID too long (max %d)", resource, MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return fmt.Errorf("%s ID must be alphanumeric with underscores, dots, colons and hyphens", resource)
	}
	return nil
}
