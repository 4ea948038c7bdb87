package state

import "fscout/internal/domain"

// AppState is the centralized UI state. It is owned by the Bubble Tea
// model and only ever touched from the update loop.
type AppState struct {
	// Search surface
	RootPath     string
	Pattern      string // last submitted pattern
	Results      []string
	HaveSearched bool

	// List navigation
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	// In-flight search tasks. More than one may run at a time; the
	// displayed list is whichever result was delivered last.
	ActiveSearches int

	StatusMessage string

	// Directory browser
	BrowseDir     string
	BrowseEntries []domain.Entry
	BrowseIndex   int
}

// NewAppState creates an empty application state.
func NewAppState() *AppState {
	return &AppState{
		Results:        []string{},
		ViewportHeight: 20,
	}
}

// SetResults replaces the displayed list atomically and keeps the
// selection within bounds.
func (s *AppState) SetResults(paths []string) {
	s.Results = paths
	s.HaveSearched = true
	if s.SelectedIndex >= len(paths) {
		s.SelectedIndex = len(paths) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.ViewportOffset > s.SelectedIndex {
		s.ViewportOffset = s.SelectedIndex
	}
}

// SelectedPath returns the highlighted result, or "" when the list is empty.
func (s *AppState) SelectedPath() string {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Results) {
		return ""
	}
	return s.Results[s.SelectedIndex]
}
