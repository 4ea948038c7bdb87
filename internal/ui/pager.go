package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Pager shows file content inside the embedded ov pager, releasing the
// terminal from Bubble Tea for the duration.
type Pager struct {
	program *tea.Program
}

// NewPager creates a new pager.
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management.
func (p *Pager) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowFile displays the file at path in the pager. It blocks until the
// pager exits, so call it from a tea.Cmd, never from the update loop.
func (p *Pager) ShowFile(path string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Small delay so ov has fully exited before the terminal is restored
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(f)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
