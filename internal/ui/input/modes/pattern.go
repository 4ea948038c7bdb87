package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"fscout/internal/ui/input/types"
)

type PatternMode struct {
	TextInputMode
}

func NewPatternMode(ti *textinput.Model) *PatternMode {
	return &PatternMode{
		TextInputMode: NewTextInputMode(types.ModePattern, "pattern", "Pattern: ", ti),
	}
}
