package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"fscout/internal/ui/input/types"
)

// BrowseMode is the directory picker: move through the subdirectories of
// the browsed directory, descend or ascend, and choose one as the new root.
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	// The model loads the directory listing
	return []types.Action{types.BrowseRefreshAction{}}
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyUp:
		return []types.Action{types.BrowseMoveAction{Delta: -1}}, true
	case tea.KeyDown:
		return []types.Action{types.BrowseMoveAction{Delta: 1}}, true
	case tea.KeyEnter:
		return []types.Action{types.BrowseDescendAction{}}, true
	case tea.KeyBackspace:
		return []types.Action{types.BrowseAscendAction{}}, true
	case tea.KeyEsc:
		return []types.Action{
			types.BrowseCancelAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.BrowseMoveAction{Delta: 1}}, true
	case "k":
		return []types.Action{types.BrowseMoveAction{Delta: -1}}, true
	case "l":
		return []types.Action{types.BrowseDescendAction{}}, true
	case "h", "u":
		return []types.Action{types.BrowseAscendAction{}}, true
	case " ":
		// Choose the highlighted directory as the new search root
		return []types.Action{
			types.BrowseChooseAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "q":
		return []types.Action{
			types.BrowseCancelAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, true // browse mode swallows everything else
}
