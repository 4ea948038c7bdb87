package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fscout/internal/config"
	"fscout/internal/domain"
	"fscout/internal/eventbus"
	"fscout/internal/walker"
)

func newTestModel(t *testing.T, bus eventbus.EventBus) *Model {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/root/readme.md", []byte("x"), 0644))
	require.NoError(t, fs.MkdirAll("/root/sub", 0755))

	cfg := config.DefaultConfig()
	cfg.RootDir = "/root"

	m := NewModel(bus, cfg, walker.New(fs))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func complete(m *Model, req domain.SearchRequest, paths []string) {
	m.Update(EventMsg{Event: eventbus.SearchCompletedEvent{
		Result: domain.SearchResult{Request: req, Paths: paths},
	}})
}

func TestCompletedSearchReplacesResults(t *testing.T) {
	m := newTestModel(t, eventbus.New())
	req := domain.SearchRequest{RootPath: "/root", Pattern: "a"}

	m.Update(EventMsg{Event: eventbus.SearchStartedEvent{Request: req}})
	assert.Equal(t, 1, m.State().ActiveSearches)

	complete(m, req, []string{"/root/a.txt", "/root/ab.txt"})
	assert.Equal(t, 0, m.State().ActiveSearches)
	assert.True(t, m.State().HaveSearched)
	assert.Equal(t, []string{"/root/a.txt", "/root/ab.txt"}, m.State().Results)

	// A later delivery replaces the list wholesale.
	complete(m, req, []string{"/root/other.txt"})
	assert.Equal(t, []string{"/root/other.txt"}, m.State().Results)
	assert.Equal(t, 0, m.State().SelectedIndex)
}

func TestFailedSearchLeavesResultsUntouched(t *testing.T) {
	m := newTestModel(t, eventbus.New())
	req := domain.SearchRequest{RootPath: "/root", Pattern: "a"}
	complete(m, req, []string{"/root/a.txt"})

	bad := domain.SearchRequest{RootPath: "/root", Pattern: "("}
	m.Update(EventMsg{Event: eventbus.SearchFailedEvent{
		Request: bad,
		Err:     assert.AnError,
	}})

	assert.Equal(t, []string{"/root/a.txt"}, m.State().Results)
	assert.NotEmpty(t, m.State().StatusMessage)
}

func TestMaxResultsCapsDisplayedList(t *testing.T) {
	bus := eventbus.New()
	m := newTestModel(t, bus)
	m.config.UISettings.MaxResults = 2

	req := domain.SearchRequest{RootPath: "/root", Pattern: ""}
	complete(m, req, []string{"/root/a", "/root/b", "/root/c", "/root/d"})

	assert.Equal(t, []string{"/root/a", "/root/b"}, m.State().Results)
	assert.Contains(t, m.State().StatusMessage, "2")
}

func TestNavigationStaysWithinBounds(t *testing.T) {
	m := newTestModel(t, eventbus.New())
	req := domain.SearchRequest{RootPath: "/root", Pattern: ""}
	complete(m, req, []string{"/root/a", "/root/b", "/root/c"})

	m.Update(key("j"))
	m.Update(key("j"))
	assert.Equal(t, 2, m.State().SelectedIndex)

	m.Update(key("j"))
	assert.Equal(t, 2, m.State().SelectedIndex)

	m.Update(key("k"))
	assert.Equal(t, 1, m.State().SelectedIndex)

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.State().SelectedIndex)

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, m.State().SelectedIndex)
}

func TestPatternSubmitPublishesSearchRequest(t *testing.T) {
	bus := eventbus.New()
	requested := make(chan eventbus.SearchRequestedEvent, 1)
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchRequestedEvent); ok {
			requested <- ev
		}
	})

	m := newTestModel(t, bus)
	m.Update(key("/"))
	for _, r := range "foo" {
		m.Update(key(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "foo", m.State().Pattern)

	select {
	case ev := <-requested:
		assert.Equal(t, domain.SearchRequest{RootPath: "/root", Pattern: "foo"}, ev.Request)
	case <-time.After(2 * time.Second):
		t.Fatal("no search request published")
	}
}

func TestEscCancelsPatternEntry(t *testing.T) {
	bus := eventbus.New()
	requested := make(chan eventbus.SearchRequestedEvent, 1)
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchRequestedEvent); ok {
			requested <- ev
		}
	})

	m := newTestModel(t, bus)
	m.Update(key("/"))
	m.Update(key("x"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "", m.State().Pattern)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, requested)
}

func TestBrowseChooseChangesRoot(t *testing.T) {
	m := newTestModel(t, eventbus.New())

	m.Update(key("c"))
	require.Len(t, m.State().BrowseEntries, 1) // files are filtered out
	assert.Equal(t, "/root/sub", m.State().BrowseEntries[0].Path)

	m.Update(key(" "))
	assert.Equal(t, "/root/sub", m.State().RootPath)
	assert.Empty(t, m.State().BrowseEntries)
}

func TestBrowseCancelKeepsRoot(t *testing.T) {
	m := newTestModel(t, eventbus.New())

	m.Update(key("c"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "/root", m.State().RootPath)
	assert.Empty(t, m.State().BrowseEntries)
}

func TestViewRendersSearchSurface(t *testing.T) {
	m := newTestModel(t, eventbus.New())
	req := domain.SearchRequest{RootPath: "/root", Pattern: "md"}
	m.state.Pattern = "md"
	complete(m, req, []string{"/root/readme.md"})

	out := m.View()
	assert.Contains(t, out, "/root")
	assert.Contains(t, out, "readme.md")
}
