package build

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 2

// DiskCache persists per-project invocation state keyed by an options+input
// digest, so a reused handle can tell unchanged inputs apart across
// processes. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedFile is one source file's persisted state: its content digest and
// the outputs rendered from it.
type cachedFile struct {
	Digest  Digest
	Outputs []OutputFile
}

type cachePayload struct {
	Schema        uint16
	OptionsDigest Digest
	Files         map[string]cachedFile
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location under the user cache directory.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "projects", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *cachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = cacheSchemaVersion
	data, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal cache payload: %w", err)
	}
	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Get reads a payload from the disk cache. A missing entry or a schema
// mismatch returns (nil, nil): stale entries are not an error.
func (c *DiskCache) Get(key Digest) (*cachePayload, error) {
	if c == nil {
		return nil, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal cache payload: %w", err)
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, nil
	}
	return &payload, nil
}
