package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"fscout/internal/ui/input/types"
)

type PathMode struct {
	TextInputMode
}

func NewPathMode(ti *textinput.Model) *PathMode {
	return &PathMode{
		TextInputMode: NewTextInputMode(types.ModePath, "path", "Root: ", ti),
	}
}
