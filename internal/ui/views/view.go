package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flashfind/internal/domain"
	"flashfind/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	QueryView      string // rendered search entry
	QueryFocused   bool
	Regex          bool
	Searching      bool
	Spinner        string
	SearchDir      string
	Items          []string
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	CountLabel     string
	StatusMessage  string
	PromptView     string // rendered save prompt, "" when closed
	ConfirmPath    string // file awaiting overwrite confirmation
	Notice         *domain.Notice
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")
	content.WriteString(r.renderEntry(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderList(state))
	content.WriteString("\n\n")

	if state.CountLabel != "" {
		content.WriteString(r.styles.Count.Render(state.CountLabel))
	}
	content.WriteString("\n")
	content.WriteString(r.styles.Status.Render(state.StatusMessage))
	content.WriteString("\n")

	switch {
	case state.ConfirmPath != "":
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("%s already exists. Overwrite? (y/n)", state.ConfirmPath)))
	case state.PromptView != "":
		content.WriteString(r.styles.LabelActive.Render("Save results to: "))
		content.WriteString(state.PromptView)
	}
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(state.HelpView))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.Notice != nil {
		popup := r.popupRender.RenderNotice(*state.Notice)
		return r.popupRender.RenderPopupOverlay(finalContent, popup, state.Height, state.Width, r.styles.NoticeBox)
	}

	return finalContent
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("flashfind")

	right := ""
	if state.Searching {
		right = r.styles.Searching.Render(fmt.Sprintf("%s Searching", state.Spinner))
	} else if state.SearchDir != "" {
		right = r.styles.Dim.Render(state.SearchDir)
	}
	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	// Account for main container padding
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	// The logo's bottom margin is a blank line; put the indicator on the logo's row
	logoLines := strings.SplitN(logo, "\n", 2)
	logoLines[0] = logoLines[0] + strings.Repeat(" ", paddingWidth) + right
	return strings.Join(logoLines, "\n")
}

func (r *Renderer) renderEntry(state ViewState) string {
	label := r.styles.Label.Render("Search: ")
	if state.QueryFocused {
		label = r.styles.LabelActive.Render("Search: ")
	}

	box := "[ ]"
	if state.Regex {
		box = "[x]"
	}
	return fmt.Sprintf("%s%s  %s", label, state.QueryView, r.styles.Label.Render(box+" Use Regex"))
}

// renderList renders the visible window of result paths
func (r *Renderer) renderList(state ViewState) string {
	total := len(state.Items)
	if total == 0 {
		if state.Searching {
			return r.styles.Dim.Render("Searching...")
		}
		return r.styles.Dim.Render("No results. Type a pattern and press enter.")
	}

	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}
	offset := state.ViewportOffset
	if offset < 0 || offset >= total {
		offset = 0
	}
	effectiveHeight := logic.EffectiveHeight(offset, height, total)

	maxWidth := state.Width - 6
	var lines []string

	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	end := offset + effectiveHeight
	if end > total {
		end = total
	}
	for i := offset; i < end; i++ {
		path := truncateLeft(state.Items[i], maxWidth)
		if i == state.SelectedIndex {
			lines = append(lines, r.styles.Selected.Render("> "+path))
		} else {
			lines = append(lines, "  "+path)
		}
	}

	if end < total {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}

	return strings.Join(lines, "\n")
}

// truncateLeft keeps the tail of a path, which is the part that tells results apart
func truncateLeft(s string, width int) string {
	if width <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes)+2 <= width {
		return s
	}
	keep := width - 3
	return "…" + string(runes[len(runes)-keep:])
}
