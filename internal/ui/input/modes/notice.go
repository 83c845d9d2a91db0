package modes

import (
	"flashfind/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// NoticeMode blocks other input until the notice is dismissed
type NoticeMode struct{}

func NewNoticeMode() *NoticeMode {
	return &NoticeMode{}
}

func (m *NoticeMode) Name() string {
	return "notice"
}

func (m *NoticeMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NoticeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NoticeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter", "esc", " ", "q":
		return []types.Action{types.DismissNoticeAction{}}, true
	}
	return nil, true
}
