package uuid

import (
	"github.com/google/uuid"
)

func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)

	return err == nil
}

// NewSessionID identifies one run of the CLI in the X-TFS-Session header.
func NewSessionID() string {
	return uuid.NewString()
}
