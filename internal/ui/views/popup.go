package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flashfind/internal/domain"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderNotice renders the body of a notice modal
func (pr *PopupRenderer) RenderNotice(n domain.Notice) string {
	var b strings.Builder
	b.WriteString(pr.styles.NoticeTitle(n.Kind).Render(n.Title))
	b.WriteString("\n\n")
	b.WriteString(n.Message)
	b.WriteString("\n\n")
	b.WriteString(pr.styles.Help.Render("enter: OK"))
	return b.String()
}

// RenderPopupOverlay renders a popup on top of main content. Rows covered by
// the popup are replaced; everything else is greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	if width <= 0 {
		width = 80
	}

	maxW := width - 6 // keep a small margin
	if maxW < 20 {
		maxW = 20
	}
	styledPopup := popupStyle.MaxWidth(maxW).Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	if height > len(baseLines) {
		baseLines = append(baseLines, make([]string, height-len(baseLines))...)
	}
	if len(popupLines) > len(baseLines) {
		baseLines = append(baseLines, make([]string, len(popupLines)-len(baseLines))...)
	}

	y := (len(baseLines) - len(popupLines)) / 2
	for i, line := range popupLines {
		baseLines[y+i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(baseLines, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	lines := strings.Split(plain, "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = gray.Render(line)
	}
	return strings.Join(lines, "\n")
}
