package views

import (
	"github.com/charmbracelet/lipgloss"

	"flashfind/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	LabelActive lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Count       lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Selected    lipgloss.Style
	Searching   lipgloss.Style
	NoticeBox   lipgloss.Style
	NoticeInfo  lipgloss.Style
	NoticeWarn  lipgloss.Style
	NoticeError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		LabelActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Confirm:     lipgloss.NewStyle().Bold(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Selected:    lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Searching:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		NoticeBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		NoticeInfo:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),  // cyan
		NoticeWarn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")), // yellow
		NoticeError: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")), // red
	}
}

// NoticeTitle returns the title style for a notice kind
func (s *Styles) NoticeTitle(kind domain.NoticeKind) lipgloss.Style {
	switch kind {
	case domain.NoticeWarning:
		return s.NoticeWarn
	case domain.NoticeError:
		return s.NoticeError
	default:
		return s.NoticeInfo
	}
}
