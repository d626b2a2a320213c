package ids

import "github.com/google/uuid"

// New returns an opaque URL-safe identifier for a freshly created record.
// Identifiers are stable once assigned and carry no ordering guarantee.
func New() string {
	return uuid.NewString()
}
