package security

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionID creates a new UUID for session identification
func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateInviteCode returns a short uppercase family invite code: the first
// eight hex characters of a random UUID. Uniqueness is enforced by the store,
// which retries on collision.
func GenerateInviteCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
