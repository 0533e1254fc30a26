// Package staleness computes a scalar freshness stamp for a directory
// subtree. The stamp is the maximum modification time of every file and
// directory beneath the root, so any out-of-band edit moves it forward.
package staleness

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/migratio/contentcatalog/internal/logfields"
)

// Stamp returns the freshness stamp for the subtree rooted at path.
//
// A missing path yields the zero time rather than an error: absent category
// roots are valid and simply have no content. Individual stat failures during
// the walk (e.g., a race with a concurrent delete) contribute nothing and do
// not abort the scan.
func Stamp(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}

	if !info.IsDir() {
		return info.ModTime()
	}

	stamp := info.ModTime()
	entries, err := os.ReadDir(path)
	if err != nil {
		slog.Debug("staleness scan: unreadable directory", logfields.Path(path), logfields.Error(err))
		return stamp
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			if s := Stamp(child); s.After(stamp) {
				stamp = s
			}
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			slog.Debug("staleness scan: stat failed", logfields.Path(child), logfields.Error(err))
			continue
		}
		if mt := fi.ModTime(); mt.After(stamp) {
			stamp = mt
		}
	}
	return stamp
}
