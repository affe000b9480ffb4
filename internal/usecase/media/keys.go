package media

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/persnickety/venues-ms-go/internal/port"
)

// NewStorageKey draws 8 cryptographically random bytes and renders them as 16
// hex characters. No collision check is performed anywhere; uniqueness is
// probabilistic on the entropy width.
func NewStorageKey() (string, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	return hex.EncodeToString(raw), nil
}

// compile-time check: NewStorageKey must satisfy port.KeyGen
var _ port.KeyGen = NewStorageKey

// ThumbKey derives the thumbnail object key from a key prefix and the
// upload's extension. The stored bytes are always JPEG even when the key
// carries another extension.
func ThumbKey(prefix, ext string) string {
	return prefix + "thumb" + ext
}

// OriginalKey derives the full-size object key from a key prefix and extension.
func OriginalKey(prefix, ext string) string {
	return prefix + ext
}
