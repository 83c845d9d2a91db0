package modes

import (
	"flashfind/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NormalMode drives the result list
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Cancel):
		if ctx.Searching() {
			return []types.Action{types.CancelSearchAction{}}, true
		}
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAction{}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.OpenAction{}}, true
	case key.Matches(msg, m.keys.Copy):
		return []types.Action{types.CopyPathAction{}}, true
	case key.Matches(msg, m.keys.OpenFolder):
		return []types.Action{types.OpenFolderAction{}}, true
	case key.Matches(msg, m.keys.Preview):
		return []types.Action{types.PreviewAction{}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearResultsAction{}}, true
	case key.Matches(msg, m.keys.Save):
		return []types.Action{types.SaveResultsAction{}}, true

	case msg.String() == "r", key.Matches(msg, m.keys.ToggleRegex):
		return []types.Action{types.ToggleRegexAction{}}, true
	case key.Matches(msg, m.keys.FocusQuery):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
