package archive

// Entry is a single named object read from the archive. Entries are owned by
// the Store for the lifetime of a session; callers reach them through the
// Store and never hold detached copies.
type Entry struct {
	Name  string // header name, verbatim as stored
	Size  int64  // content length in bytes
	Owner string // mutable, initially the archive uname
	IsDir bool   // directory-typed entry with no content

	content []byte
}
