package modes

import (
	"flashfind/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// QueryMode edits the search entry. The entry keeps its text across focus changes.
type QueryMode struct {
	TextInputMode
	keys types.KeyMap
}

func NewQueryMode(ti *textinput.Model, keys types.KeyMap) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", ti),
		keys:          keys,
	}
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Search):
		// Focus stays in the entry; the model moves it to the list once results arrive
		return []types.Action{types.SubmitTextAction{Text: m.value(), Mode: types.ModeQuery}}, true
	case key.Matches(msg, m.keys.ToggleRegex):
		return []types.Action{types.ToggleRegexAction{}}, true
	case key.Matches(msg, m.keys.FocusList):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.keys.Cancel):
		if ctx.Searching() {
			return []types.Action{types.CancelSearchAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, false
}
