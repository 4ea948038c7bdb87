package scanner

import (
	"log"

	"fscout/internal/pattern"
	"fscout/internal/walker"
)

// Scanner recursively walks a directory subtree and collects the paths of
// entries whose names match a compiled pattern. Files and directories are
// both eligible matches, and a matching directory is still descended into.
type Scanner struct {
	walker *walker.Walker
}

// New creates a scanner that traverses via the given walker.
func New(w *walker.Walker) *Scanner {
	return &Scanner{walker: w}
}

// Scan traverses the subtree rooted at root depth-first and returns the
// matching paths in discovery order. The scan is best-effort: a branch that
// cannot be read contributes nothing and traversal continues with its
// siblings. An unreadable or missing root yields an empty result.
func (s *Scanner) Scan(root string, m *pattern.Matcher) []string {
	results := []string{}
	s.scanDir(root, m, &results)
	return results
}

func (s *Scanner) scanDir(dir string, m *pattern.Matcher, results *[]string) {
	entries, err := s.walker.ListChildren(dir)
	if err != nil {
		// Permission denied, deleted mid-scan, not a directory: drop the
		// branch and keep going. Search is advisory, not a verification pass.
		log.Printf("Skipping %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		// Match and recurse are independent checks: a directory is both a
		// match candidate and a place to descend into.
		if m.Matches(entry.Name) {
			*results = append(*results, entry.Path)
		}
		if entry.IsDir {
			s.scanDir(entry.Path, m, results)
		}
	}
}
