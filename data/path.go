package data

import (
	"path"
	"strings"
)

// Resolve normalizes input against the base directory into a canonical
// absolute virtual path. Relative inputs are appended to base; "." segments
// collapse, ".." removes the previous segment and is clamped at root, and
// repeated separators are merged. The result always starts with "/" and
// carries no trailing separator except for root itself.
func Resolve(base, input string) string {
	if !path.IsAbs(input) {
		input = path.Join(base, input)
	}

	cleaned := path.Clean(input)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}

	return cleaned
}

// StripStoragePrefix removes the "./" artifact some archives carry on entry
// names. It is applied to both stored names and resolved query paths so two
// representations of the same logical path never compare as distinct.
func StripStoragePrefix(name string) string {
	return strings.TrimPrefix(name, "./")
}

// EntryName converts an absolute virtual path into the form entry names are
// stored and compared in.
func EntryName(path string) string {
	return StripStoragePrefix(strings.TrimLeft(path, "/"))
}

// DirPrefix builds the scan prefix for a directory path. Root becomes the
// empty prefix; everything else is the trimmed path plus one trailing
// separator.
func DirPrefix(dir string) string {
	trimmed := strings.Trim(dir, "/")
	if trimmed == "" {
		return ""
	}

	return StripStoragePrefix(trimmed) + "/"
}
