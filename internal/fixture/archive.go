package fixture

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// loadArchive reads the zip at path from fsys and opens its central
// directory. It also returns the CRC-32 of the raw archive bytes, which
// the store records as its extraction completion marker.
func loadArchive(fsys fs.FS, path string) (*zip.Reader, uint32, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrMissingArchive, path)
		}
		return nil, 0, fmt.Errorf("read archive %s: %w", path, err)
	}
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrInvalidArchive, path, err)
	}
	return reader, crc32.ChecksumIEEE(content), nil
}

// IsValidZip reports whether the file at path opens as a zip archive.
func IsValidZip(fsys fs.FS, path string) bool {
	_, _, err := loadArchive(fsys, path)
	return err == nil
}

// ArchiveInfo summarizes one bundled zip for listings.
type ArchiveInfo struct {
	Size    int64
	Entries int
}

// Stat returns size and entry count for the zip at path.
func Stat(fsys fs.FS, path string) (ArchiveInfo, error) {
	info, err := fs.Stat(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ArchiveInfo{}, fmt.Errorf("%w: %s", ErrMissingArchive, path)
		}
		return ArchiveInfo{}, fmt.Errorf("stat archive %s: %w", path, err)
	}
	reader, _, err := loadArchive(fsys, path)
	if err != nil {
		return ArchiveInfo{}, err
	}
	return ArchiveInfo{Size: info.Size(), Entries: len(reader.File)}, nil
}

// extract unpacks every archive entry under dest. The target directory is
// expected to be freshly created: writing an entry that already exists
// fails with ErrCollision, which flags duplicate content in the archive.
func extract(reader *zip.Reader, archivePath string, dest string) error {
	for _, entry := range reader.File {
		rel := filepath.FromSlash(entry.Name)
		if !filepath.IsLocal(rel) {
			return fmt.Errorf("%w: %s: unsafe entry %q", ErrInvalidArchive, archivePath, entry.Name)
		}
		target := filepath.Join(dest, rel)

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", filepath.Dir(target), err)
		}
		if err := writeEntry(entry, target); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(entry *zip.File, target string) error {
	source, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer func() { _ = source.Close() }()

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrCollision, target)
		}
		return fmt.Errorf("create file %s: %w", target, err)
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(file, source); err != nil {
		return fmt.Errorf("write file %s: %w", target, err)
	}
	return nil
}
