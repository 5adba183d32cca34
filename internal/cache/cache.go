package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store is the interface for analysis result caching. The engine never
// touches the cache; only the pipeline around it does.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// AnalysisKey derives a cache key from the submission itself, so the same
// text fetched from two URLs (or re-submitted locally) hits the same
// entry. The version prefix invalidates everything when scoring changes.
func AnalysisKey(title, content string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return "biascope:v1:" + hex.EncodeToString(h.Sum(nil))
}
