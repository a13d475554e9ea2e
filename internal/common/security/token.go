package security

import (
	"strings"

	"github.com/google/uuid"
)

// NewSessionToken returns an opaque 32-character alphanumeric token.
// Tokens carry no claims and never expire on their own; validity is decided
// solely by comparing against the value stored on the user, so a later
// login silently invalidates any earlier token.
func NewSessionToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
