package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores extracted output keyed by input line
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

// maxRawKey is the longest line used verbatim as a key
const maxRawKey = 256

// Key derives a cache key from a line. Long lines are hashed so the key
// does not hold a second copy of them.
func Key(line string) string {
	if len(line) <= maxRawKey {
		return "l:" + line
	}
	hash := sha256.Sum256([]byte(line))
	return "h:" + hex.EncodeToString(hash[:])
}
