package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"fscout/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	RootPath     string
	Pattern      string
	Results      []string
	HaveSearched bool

	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	Searching     bool
	ActiveCount   int
	StatusMessage string
	StatusIsError bool

	InputMode   string // "", "pattern", "path", "browse"
	InputPrompt string
	TextInput   string

	BrowseDir     string
	BrowseEntries []domain.Entry
	BrowseIndex   int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	// Root and pattern lines
	content.WriteString(r.styles.Label.Render("Root:    "))
	content.WriteString(r.styles.Value.Render(state.RootPath))
	content.WriteString("\n")
	content.WriteString(r.styles.Label.Render("Pattern: "))
	if state.Pattern == "" {
		content.WriteString(r.styles.Dim.Render("(all entries)"))
	} else {
		content.WriteString(r.styles.Value.Render(state.Pattern))
	}
	if state.HaveSearched {
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("  %d match(es)", len(state.Results))))
	}
	content.WriteString("\n")

	// Text input prompt when editing
	if state.InputMode == "pattern" || state.InputMode == "path" {
		content.WriteString(r.styles.Prompt.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
		content.WriteString("█\n")
	}
	content.WriteString("\n")

	// Main content
	if state.InputMode == "browse" {
		content.WriteString(r.renderBrowser(state))
	} else {
		content.WriteString(r.renderResults(state))
	}

	// Status line
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Help footer
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(r.helpLine(state)))

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("fscout")

	if !state.Searching {
		return logo
	}

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	indicator := r.styles.Dim.Render(fmt.Sprintf("%s Searching (%d)", spinner[frame], state.ActiveCount))

	logoWidth := lipgloss.Width(logo)
	rightWidth := lipgloss.Width(indicator)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - logoWidth - rightWidth
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + indicator
	}
	return logo + "  " + indicator
}

func (r *Renderer) renderResults(state ViewState) string {
	if !state.HaveSearched {
		return r.styles.Dim.Render("Press / to enter a pattern, then Enter to search.")
	}
	if len(state.Results) == 0 {
		return r.styles.Dim.Render("No matches.")
	}

	start := state.ViewportOffset
	if start < 0 {
		start = 0
	}
	end := start + state.ViewportHeight
	if end > len(state.Results) {
		end = len(state.Results)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := state.Results[i]
		if i == state.SelectedIndex {
			line = r.styles.HighlightBg.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	out := strings.Join(lines, "\n")
	if end < len(state.Results) {
		out += "\n" + r.styles.Scroll.Render(fmt.Sprintf("… %d more", len(state.Results)-end))
	}
	return out
}

func (r *Renderer) renderBrowser(state ViewState) string {
	content := &strings.Builder{}
	content.WriteString(r.styles.Label.Render("Choose directory: "))
	content.WriteString(r.styles.Directory.Render(state.BrowseDir))
	content.WriteString("\n\n")

	if len(state.BrowseEntries) == 0 {
		content.WriteString(r.styles.Dim.Render("(no subdirectories)"))
	} else {
		start := 0
		end := len(state.BrowseEntries)
		if end-start > state.ViewportHeight {
			// Keep the highlighted entry visible
			start = state.BrowseIndex - state.ViewportHeight/2
			if start < 0 {
				start = 0
			}
			end = start + state.ViewportHeight
			if end > len(state.BrowseEntries) {
				end = len(state.BrowseEntries)
			}
		}
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			name := state.BrowseEntries[i].Name + "/"
			if i == state.BrowseIndex {
				lines = append(lines, r.styles.HighlightBg.Render("> "+name))
			} else {
				lines = append(lines, "  "+r.styles.Directory.Render(name))
			}
		}
		content.WriteString(strings.Join(lines, "\n"))
	}

	return r.styles.BrowseBox.Render(content.String())
}

func (r *Renderer) helpLine(state ViewState) string {
	switch state.InputMode {
	case "pattern", "path":
		return "enter submit · esc cancel"
	case "browse":
		return "j/k move · enter descend · h up · space choose · esc cancel"
	default:
		return "/ pattern · e root · c choose dir · s search · enter open · v preview · q quit"
	}
}
