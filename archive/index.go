package archive

import (
	"sort"
	"strings"

	"github.com/mwantia/tarsh/data"
)

// Index derives virtual directories from the flat entry namespace. A path is
// a directory iff at least one entry name starts with the path plus a
// separator; no directory node is ever materialized. Scans run over the
// store's name-ordered btree, so only keys under the prefix are visited.
type Index struct {
	store *Store
}

func NewIndex(store *Store) *Index {
	return &Index{
		store: store,
	}
}

// Children returns the sorted distinct first path segments among entries
// under the given directory. Both files and directory-only components
// surface here the same way.
func (idx *Index) Children(dir string) []string {
	prefix := data.DirPrefix(dir)

	seen := make(map[string]struct{})
	idx.store.index.Ascend(prefix, func(name string, _ *Entry) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}

		rest := name[len(prefix):]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[:i]
		}
		if rest != "" {
			seen[rest] = struct{}{}
		}
		return true
	})

	children := make([]string, 0, len(seen))
	for name := range seen {
		children = append(children, name)
	}
	sort.Strings(children)

	return children
}

// Exists reports whether the given path denotes a directory: root always
// does, anything else requires at least one entry under its prefix.
func (idx *Index) Exists(dir string) bool {
	prefix := data.DirPrefix(dir)
	if prefix == "" {
		return true
	}

	exists := false
	idx.store.index.Ascend(prefix, func(name string, _ *Entry) bool {
		exists = strings.HasPrefix(name, prefix)
		return false
	})

	return exists
}
