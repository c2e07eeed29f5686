package fixture

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/log"
)

// markerName is the completion marker written inside an extraction
// target. It holds the CRC-32 of the source archive, so a target left
// behind by an interrupted extraction (no marker) or by an older dataset
// build (stale checksum) is detected and replaced.
const markerName = ".fixture-ok"

// Store extracts bundled archives into a cache directory on first use.
//
// Each key unpacks into CacheDir/<key>. Targets are created lazily and
// persist across calls; Path never fails because a target already
// exists. The cache directory is explicit state with an explicit
// lifecycle: Clear and ClearAll remove targets so the next Path call
// re-extracts.
type Store struct {
	// Source is the data tree holding the archives.
	Source fs.FS

	// CacheDir is the extraction root, one subdirectory per key.
	CacheDir string

	// Log receives verbose diagnostics. May be nil.
	Log *log.Logger
}

// Path returns the extraction target for key, extracting the archive on
// first use. Repeated calls return the same path without error.
func (s *Store) Path(key Key) (string, error) {
	arc, err := Lookup(key)
	if err != nil {
		return "", err
	}
	if s.CacheDir == "" {
		return "", fmt.Errorf("store cache directory is not set")
	}

	reader, checksum, err := loadArchive(s.Source, arc.ZipPath)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.CacheDir, string(key))
	if extracted(target, checksum) {
		s.Log.Printf("fixture %s: reusing %s", key, target)
		return target, nil
	}

	// Either a first extraction or a partial/stale one. Removing the
	// target keeps Path idempotent without ever tripping over an
	// existing destination.
	if err := os.RemoveAll(target); err != nil {
		return "", fmt.Errorf("clear extraction target %s: %w", target, err)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create extraction target %s: %w", target, err)
	}
	s.Log.Printf("fixture %s: extracting %s into %s", key, arc.ZipPath, target)
	if err := extract(reader, arc.ZipPath, target); err != nil {
		return "", err
	}
	if err := writeMarker(target, checksum); err != nil {
		return "", err
	}
	return target, nil
}

// Clear removes the extraction target for key. Clearing a key that was
// never extracted is not an error.
func (s *Store) Clear(key Key) error {
	if _, err := Lookup(key); err != nil {
		return err
	}
	target := filepath.Join(s.CacheDir, string(key))
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("clear extraction target %s: %w", target, err)
	}
	return nil
}

// ClearAll removes the whole cache directory.
func (s *Store) ClearAll() error {
	if s.CacheDir == "" {
		return nil
	}
	if err := os.RemoveAll(s.CacheDir); err != nil {
		return fmt.Errorf("clear cache %s: %w", s.CacheDir, err)
	}
	return nil
}

// extracted reports whether target holds a completed extraction of the
// archive with the given checksum.
func extracted(target string, checksum uint32) bool {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return false
	}
	content, err := os.ReadFile(filepath.Join(target, markerName))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(content)) == fmt.Sprintf("%08x", checksum)
}

func writeMarker(target string, checksum uint32) error {
	path := filepath.Join(target, markerName)
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%08x\n", checksum)), 0o644); err != nil {
		return fmt.Errorf("write marker %s: %w", path, err)
	}
	return nil
}
