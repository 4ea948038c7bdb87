package domain

// Entry is a single filesystem entry discovered during traversal.
type Entry struct {
	Name  string // bare name, the part the pattern is matched against
	Path  string // full path under the search root
	IsDir bool
}

// SearchRequest describes one search. It is captured by value when a task
// is spawned so edits to the live input fields cannot affect a running scan.
type SearchRequest struct {
	RootPath string
	Pattern  string
}

// SearchResult is the complete, ordered match list for one request.
// Paths appear in traversal order; the list is never delivered partially.
type SearchResult struct {
	Request SearchRequest
	Paths   []string
}
