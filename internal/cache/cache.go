// Package cache maintains the localized cache directory backing the
// persistent gache stores.
package cache

import (
	"path/filepath"
	"time"

	"github.com/ytgrab-cli/ytgrab/filesystem"
	"github.com/ytgrab-cli/ytgrab/where"
)

// TTL is how long an untouched cache entry survives before garbage collection.
const TTL = 30 * 24 * time.Hour

// CollectGarbage prunes expired cache entries. Meant to run in the background
// at startup; failures are silent, a stale cache file is harmless.
func CollectGarbage() {
	fs := filesystem.API()

	for _, dir := range []string{where.Cache(), where.Temp()} {
		entries, err := fs.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if time.Since(entry.ModTime()) > TTL {
				_ = fs.Remove(filepath.Join(dir, entry.Name()))
			}
		}
	}
}
