package ui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fscout/internal/config"
	"fscout/internal/domain"
	"fscout/internal/eventbus"
	"fscout/internal/launcher"
	"fscout/internal/ui/input"
	inputtypes "fscout/internal/ui/input/types"
	"fscout/internal/ui/state"
	"fscout/internal/ui/views"
	"fscout/internal/walker"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width  int
	height int

	inputHandler *input.Handler
	renderer     *views.Renderer
	walker       *walker.Walker // directory browser listings
	pager        *Pager

	statusIsError bool

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, w *walker.Walker) *Model {
	appState := state.NewAppState()
	appState.RootPath = cfg.RootDir

	return &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		walker:       w,
		pager:        NewPager(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the app state for inspection in tests.
func (m *Model) State() *state.AppState {
	return m.state
}

// modelContext adapts AppState to the input handler's context interface
type modelContext struct {
	state *state.AppState
}

func (c *modelContext) CurrentIndex() int    { return c.state.SelectedIndex }
func (c *modelContext) ResultCount() int     { return len(c.state.Results) }
func (c *modelContext) SelectedPath() string { return c.state.SelectedPath() }
func (c *modelContext) RootPath() string     { return c.state.RootPath }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		ctx := &modelContext{state: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case tickMsg:
		return m, tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case openResultMsg:
		if msg.err != nil {
			m.setErrorStatus(fmt.Sprintf("Could not open %s: %v", msg.path, msg.err))
			return m, clearStatusAfter(5 * time.Second)
		}
		return m, nil

	case previewDoneMsg:
		if msg.err != nil {
			m.setErrorStatus(fmt.Sprintf("Preview failed: %v", msg.err))
			return m, clearStatusAfter(5 * time.Second)
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		m.statusIsError = false
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m, nil
	}
}

// handleEvent processes domain events forwarded from the bus. Results are
// applied in arrival (completion) order: the last delivered list wins.
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.SearchStartedEvent:
		m.state.ActiveSearches++

	case eventbus.SearchCompletedEvent:
		if m.state.ActiveSearches > 0 {
			m.state.ActiveSearches--
		}
		paths := e.Result.Paths
		if max := m.config.UISettings.MaxResults; max > 0 && len(paths) > max {
			paths = paths[:max]
			m.setErrorStatus(fmt.Sprintf("Showing first %d matches", max))
		} else {
			m.state.StatusMessage = ""
			m.statusIsError = false
		}
		m.state.SetResults(paths)
		m.ensureSelectedVisible()

	case eventbus.SearchFailedEvent:
		// The previous result list stays on screen untouched
		m.setErrorStatus(e.Err.Error())

	case eventbus.ErrorEvent:
		m.setErrorStatus(e.Message)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.StartSearchAction:
		m.spawnSearch()

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModePattern:
			m.state.Pattern = a.Text
			m.spawnSearch()
		case inputtypes.ModePath:
			m.changeRoot(a.Text)
		}

	case inputtypes.CancelTextAction:
		// Nothing submitted; inputs keep their previous values

	case inputtypes.UpdateTextAction:
		// Text input echo is read from the handler at render time

	case inputtypes.OpenSelectionAction:
		if path := m.state.SelectedPath(); path != "" {
			return openPath(path)
		}

	case inputtypes.PreviewSelectionAction:
		if path := m.state.SelectedPath(); path != "" {
			return m.previewPath(path)
		}

	case inputtypes.BrowseRefreshAction:
		if m.state.BrowseDir == "" {
			m.state.BrowseDir = m.state.RootPath
		}
		m.loadBrowseEntries()

	case inputtypes.BrowseMoveAction:
		idx := m.state.BrowseIndex + a.Delta
		if idx >= 0 && idx < len(m.state.BrowseEntries) {
			m.state.BrowseIndex = idx
		}

	case inputtypes.BrowseDescendAction:
		if m.state.BrowseIndex < len(m.state.BrowseEntries) {
			m.state.BrowseDir = m.state.BrowseEntries[m.state.BrowseIndex].Path
			m.loadBrowseEntries()
		}

	case inputtypes.BrowseAscendAction:
		parent := filepath.Dir(m.state.BrowseDir)
		if parent != m.state.BrowseDir {
			m.state.BrowseDir = parent
			m.loadBrowseEntries()
		}

	case inputtypes.BrowseChooseAction:
		chosen := m.state.BrowseDir
		if m.state.BrowseIndex < len(m.state.BrowseEntries) {
			chosen = m.state.BrowseEntries[m.state.BrowseIndex].Path
		}
		m.resetBrowser()
		m.changeRoot(chosen)

	case inputtypes.BrowseCancelAction:
		m.resetBrowser()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// spawnSearch captures the live inputs into an immutable request and hands
// it to the search service through the bus. Later edits to the fields
// cannot affect the spawned task.
func (m *Model) spawnSearch() {
	req := domain.SearchRequest{
		RootPath: m.state.RootPath,
		Pattern:  m.state.Pattern,
	}
	m.bus.Publish(eventbus.SearchRequestedEvent{Request: req})
}

// changeRoot applies a new root directory and schedules a config save.
func (m *Model) changeRoot(root string) {
	if root == "" || root == m.state.RootPath {
		return
	}
	m.state.RootPath = root
	m.state.StatusMessage = fmt.Sprintf("Root set to %s", root)
	m.statusIsError = false
	m.bus.Publish(eventbus.RootChangedEvent{RootPath: root})
	m.bus.Publish(eventbus.ConfigChangedEvent{RootDir: root})
}

func (m *Model) loadBrowseEntries() {
	m.state.BrowseIndex = 0
	m.state.BrowseEntries = nil

	entries, err := m.walker.ListChildren(m.state.BrowseDir)
	if err != nil {
		m.setErrorStatus(fmt.Sprintf("Cannot read %s", m.state.BrowseDir))
		return
	}
	for _, e := range entries {
		if e.IsDir {
			m.state.BrowseEntries = append(m.state.BrowseEntries, e)
		}
	}
}

func (m *Model) resetBrowser() {
	m.state.BrowseDir = ""
	m.state.BrowseEntries = nil
	m.state.BrowseIndex = 0
}

func (m *Model) navigate(direction string) {
	maxIndex := len(m.state.Results) - 1
	switch direction {
	case "up":
		if m.state.SelectedIndex > 0 {
			m.state.SelectedIndex--
		}
	case "down":
		if m.state.SelectedIndex < maxIndex {
			m.state.SelectedIndex++
		}
	case "home":
		m.state.SelectedIndex = 0
	case "end":
		if maxIndex >= 0 {
			m.state.SelectedIndex = maxIndex
		}
	case "pageup":
		m.state.SelectedIndex -= m.state.ViewportHeight
		if m.state.SelectedIndex < 0 {
			m.state.SelectedIndex = 0
		}
	case "pagedown":
		m.state.SelectedIndex += m.state.ViewportHeight
		if m.state.SelectedIndex > maxIndex {
			m.state.SelectedIndex = maxIndex
		}
		if m.state.SelectedIndex < 0 {
			m.state.SelectedIndex = 0
		}
	}
	m.ensureSelectedVisible()
}

// ensureSelectedVisible adjusts the viewport so the selection stays on screen
func (m *Model) ensureSelectedVisible() {
	if m.state.SelectedIndex < m.state.ViewportOffset {
		m.state.ViewportOffset = m.state.SelectedIndex
	}
	if m.state.SelectedIndex >= m.state.ViewportOffset+m.state.ViewportHeight {
		m.state.ViewportOffset = m.state.SelectedIndex - m.state.ViewportHeight + 1
	}
	if m.state.ViewportOffset < 0 {
		m.state.ViewportOffset = 0
	}
}

// updateViewportHeight calculates the available height for the result list
func (m *Model) updateViewportHeight() {
	// Title, root, pattern, input, status, help plus container padding
	reservedLines := 9

	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}
	m.ensureSelectedVisible()
}

func (m *Model) setErrorStatus(msg string) {
	m.state.StatusMessage = msg
	m.statusIsError = true
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		RootPath:       m.state.RootPath,
		Pattern:        m.state.Pattern,
		Results:        m.state.Results,
		HaveSearched:   m.state.HaveSearched,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Searching:      m.state.ActiveSearches > 0,
		ActiveCount:    m.state.ActiveSearches,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.statusIsError,
		BrowseDir:      m.state.BrowseDir,
		BrowseEntries:  m.state.BrowseEntries,
		BrowseIndex:    m.state.BrowseIndex,
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModePattern:
		vs.InputMode = "pattern"
		vs.InputPrompt = "Pattern: "
	case inputtypes.ModePath:
		vs.InputMode = "path"
		vs.InputPrompt = "Root: "
	case inputtypes.ModeBrowse:
		vs.InputMode = "browse"
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.TextInput = ti.Value()
	}

	return m.renderer.Render(vs)
}

// openPath returns a command that opens a path with the OS default handler
func openPath(path string) tea.Cmd {
	return func() tea.Msg {
		err := launcher.Open(path)
		return openResultMsg{path: path, err: err}
	}
}

// previewPath returns a command that shows the file in the embedded pager
func (m *Model) previewPath(path string) tea.Cmd {
	return func() tea.Msg {
		err := m.pager.ShowFile(path)
		return previewDoneMsg{path: path, err: err}
	}
}
