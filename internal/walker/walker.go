package walker

import (
	"fmt"

	"github.com/go-git/go-billy/v5"

	"fscout/internal/domain"
)

// Walker enumerates the immediate children of a directory. It does not
// recurse, filter hidden entries, or follow symlinks specially; entries are
// reported exactly as the filesystem classifies them.
type Walker struct {
	fs billy.Filesystem
}

// New creates a walker over the given filesystem.
func New(fs billy.Filesystem) *Walker {
	return &Walker{fs: fs}
}

// ListChildren returns the direct children of dir in the order the
// filesystem enumerates them. That order is filesystem-dependent and is
// deliberately not normalized here.
func (w *Walker) ListChildren(dir string) ([]domain.Entry, error) {
	infos, err := w.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	entries := make([]domain.Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, domain.Entry{
			Name:  info.Name(),
			Path:  w.fs.Join(dir, info.Name()),
			IsDir: info.IsDir(),
		})
	}
	return entries, nil
}
