package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/tidwall/btree"

	"github.com/mwantia/tarsh/data"
)

// Store holds the entries of one archive, read once at open. It keeps the
// original archive order for deterministic iteration and a name-keyed btree
// for exact lookup and ordered prefix scans. The Store is the sole mutator
// of entry state; the only mutable field is the owner, and changes are never
// written back to the archive file.
type Store struct {
	entries []*Entry
	index   btree.Map[string, *Entry]
}

// Open reads the tar archive at path and materializes its entry list.
// Archives ending in ".gz" or ".tgz" are decompressed transparently.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArchive, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".tgz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrArchive, path, err)
		}
		defer zr.Close()

		r = zr
	}

	st := &Store{}

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrArchive, path, err)
		}

		entry := &Entry{
			Name:  hdr.Name,
			Size:  hdr.Size,
			Owner: hdr.Uname,
			IsDir: hdr.Typeflag == tar.TypeDir,
		}

		if !entry.IsDir {
			content, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %s: %v", ErrArchive, hdr.Name, err)
			}
			entry.content = content
		}

		st.entries = append(st.entries, entry)
		st.index.Set(data.StripStoragePrefix(hdr.Name), entry)
	}

	return st, nil
}

// Entries returns the entry list in archive order. The slice must not be
// modified by callers.
func (st *Store) Entries() []*Entry {
	return st.entries
}

// Lookup returns the entry stored under the exact name, after storage prefix
// stripping on both sides. Returns ErrNotExist if absent.
func (st *Store) Lookup(name string) (*Entry, error) {
	entry, ok := st.index.Get(data.StripStoragePrefix(name))
	if !ok {
		return nil, ErrNotExist
	}

	return entry, nil
}

// ReadContent returns the byte content stored under name. Directory-typed
// entries have no content and yield ErrNotFile.
func (st *Store) ReadContent(name string) ([]byte, error) {
	entry, err := st.Lookup(name)
	if err != nil {
		return nil, err
	}
	if entry.IsDir {
		return nil, ErrNotFile
	}

	return entry.content, nil
}

// SetOwner mutates the owner of the entry stored under name. The change is
// process-local and lost when the session ends.
func (st *Store) SetOwner(name, owner string) error {
	entry, err := st.Lookup(name)
	if err != nil {
		return err
	}

	entry.Owner = owner
	return nil
}

// Close releases the store. Content is held in memory, so this only exists
// to keep the acquire/release pairing explicit at the session boundary.
func (st *Store) Close() error {
	st.entries = nil
	st.index = btree.Map[string, *Entry]{}
	return nil
}
