package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transitions
type ChangeModeAction struct {
	Mode Mode
	Data string // optional initial text for text modes
}

func (a ChangeModeAction) Type() string { return "changemode" }

// Text input actions
type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submittext" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "canceltext" }

type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "updatetext" }

// Search actions
type StartSearchAction struct{}

func (a StartSearchAction) Type() string { return "startsearch" }

// Result actions
type OpenSelectionAction struct{}

func (a OpenSelectionAction) Type() string { return "openselection" }

type PreviewSelectionAction struct{}

func (a PreviewSelectionAction) Type() string { return "previewselection" }

// Directory browser actions
type BrowseRefreshAction struct{}

func (a BrowseRefreshAction) Type() string { return "browserefresh" }

type BrowseMoveAction struct {
	Delta int
}

func (a BrowseMoveAction) Type() string { return "browsemove" }

type BrowseDescendAction struct{}

func (a BrowseDescendAction) Type() string { return "browsedescend" }

type BrowseAscendAction struct{}

func (a BrowseAscendAction) Type() string { return "browseascend" }

type BrowseChooseAction struct{}

func (a BrowseChooseAction) Type() string { return "browsechoose" }

type BrowseCancelAction struct{}

func (a BrowseCancelAction) Type() string { return "browsecancel" }

// Application actions
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
