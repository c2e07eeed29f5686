// Package mth5testdata bundles sample datasets for magnetotelluric
// instrument formats (Metronix ATSS, Phoenix MTU-5C and legacy MTU,
// USGS ASCII, NIMS, Zonge ZEN, miniSEED, LEMI-424) together with
// calibration tables and StationXML metadata.
//
// Archives are embedded read-only; Path extracts one into a per-user
// cache directory on first use and returns the same directory on every
// later call.
package mth5testdata

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/fixture"
)

//go:embed all:data
var embedded embed.FS

// Root returns the bundled fixture tree.
func Root() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The data directory is embedded at build time.
		panic(fmt.Sprintf("embedded data tree: %v", err))
	}
	return sub
}

// Keys returns every bundled instrument key.
func Keys() []string {
	keys := fixture.Keys()
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = string(key)
	}
	return out
}

// Path returns the directory holding the extracted dataset for key,
// extracting the bundled archive on first use. Repeated calls are
// idempotent: they never fail because the directory already exists and
// always return the same path. Unknown keys fail with
// fixture.ErrUnknownKey.
func Path(key string) (string, error) {
	cache, err := defaultCacheDir()
	if err != nil {
		return "", err
	}
	return PathIn(cache, key)
}

// PathIn is Path with an explicit cache directory, for callers that
// manage extraction state themselves.
func PathIn(cacheDir string, key string) (string, error) {
	store := &fixture.Store{Source: Root(), CacheDir: cacheDir}
	return store.Path(fixture.Key(key))
}

// Clear removes every extraction target from the default cache
// directory. The next Path call re-extracts.
func Clear() error {
	cache, err := defaultCacheDir()
	if err != nil {
		return err
	}
	return ClearIn(cache)
}

// ClearIn is Clear with an explicit cache directory.
func ClearIn(cacheDir string) error {
	store := &fixture.Store{Source: Root(), CacheDir: cacheDir}
	return store.ClearAll()
}

func defaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache directory: %w", err)
	}
	return filepath.Join(base, "mth5-test-data"), nil
}
