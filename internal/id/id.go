package id

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a unique 16-character lowercase hex ID taken from a
// random (v4) UUID.
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
