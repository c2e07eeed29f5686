package fixture

import "errors"

// Failure taxonomy for archive lookup and extraction. All are returned
// wrapped with the offending key or path.
var (
	// ErrUnknownKey reports a key outside the bundled instrument set.
	ErrUnknownKey = errors.New("unknown instrument key")

	// ErrMissingArchive reports an expected zip absent from the data tree.
	ErrMissingArchive = errors.New("archive missing")

	// ErrInvalidArchive reports a zip that cannot be opened as one, or an
	// archive entry that would escape the extraction target.
	ErrInvalidArchive = errors.New("invalid archive")

	// ErrCollision reports an extraction writing a path that already
	// exists inside a fresh target. It indicates duplicate content in
	// the archive and must never surface from repeated Path calls.
	ErrCollision = errors.New("extraction collision")
)
