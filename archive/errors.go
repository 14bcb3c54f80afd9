package archive

import "errors"

// Standard archive errors. The entry messages double as the user-visible
// suffix of shell diagnostics, so they match the classic coreutils wording.
var (
	ErrNotExist = errors.New("No such file or directory")
	ErrNotFile  = errors.New("Not a regular file")

	// ErrArchive marks an archive that is missing or not readable as tar.
	// Fatal to session construction.
	ErrArchive = errors.New("tarsh: invalid archive")
)
