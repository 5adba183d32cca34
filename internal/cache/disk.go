package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Disk is the persistent cache layer. Each entry is one JSON file under
// the cache directory, named by its key.
type Disk struct {
	dir        string
	defaultTTL time.Duration
}

// NewDisk creates a disk cache rooted at dir
func NewDisk(dir string, defaultTTL time.Duration) *Disk {
	return &Disk{dir: dir, defaultTTL: defaultTTL}
}

type diskEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a value, dropping it if expired
func (d *Disk) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(d.path(key))
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(d.path(key))
		return nil, false
	}

	return entry.Data, true
}

// Set stores a value; ttl 0 uses the default TTL
func (d *Disk) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = d.defaultTTL
	}

	raw, err := json.Marshal(diskEntry{Data: value, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(d.path(key), raw, 0o644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Delete removes a value
func (d *Disk) Delete(key string) error {
	return os.Remove(d.path(key))
}

// Clear removes the entire cache directory
func (d *Disk) Clear() error {
	return os.RemoveAll(d.dir)
}

// path maps a key to its file. Keys contain ':' which some filesystems
// dislike, so it is flattened.
func (d *Disk) path(key string) string {
	safe := make([]byte, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			safe[i] = '_'
		} else {
			safe[i] = key[i]
		}
	}
	return filepath.Join(d.dir, string(safe)+".json")
}
