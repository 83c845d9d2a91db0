package input

import (
	"flashfind/internal/ui/input/modes"
	"flashfind/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	query       *textinput.Model // search entry, keeps its text between searches
	prompt      *textinput.Model // save path prompt
}

func New(keys types.KeyMap) *Handler {
	query := textinput.New()
	query.Prompt = ""
	query.Placeholder = "pattern"
	prompt := textinput.New()
	prompt.Prompt = ""

	h := &Handler{
		currentMode: types.ModeQuery,
		query:       &query,
		prompt:      &prompt,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeQuery] = modes.NewQueryMode(h.query, keys)
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeSavePath] = modes.NewSavePathMode(h.prompt)
	h.modes[types.ModeConfirmOverwrite] = modes.NewConfirmMode()
	h.modes[types.ModeNotice] = modes.NewNoticeMode()

	h.query.Focus()
	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			if c := h.ChangeMode(changeMode.Mode, changeMode.Data); c != nil {
				cmd = c
			}
			allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		} else {
			allActions = append(allActions, action)
		}
	}

	if !consumed {
		input := h.activeInput()
		var textCmd tea.Cmd
		*input, textCmd = input.Update(msg)
		cmd = textCmd
		// Always report the text so the view stays in sync
		allActions = append(allActions, types.UpdateTextAction{Text: input.Value(), Mode: h.currentMode})
	}

	return allActions, cmd
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeQuery
	}
	return h.currentMode
}

// ModeName returns the display name of the active mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return h.currentMode.String()
}

// QueryInput returns the search entry
func (h *Handler) QueryInput() *textinput.Model {
	return h.query
}

// PromptInput returns the save path prompt
func (h *Handler) PromptInput() *textinput.Model {
	return h.prompt
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeQuery || mode == types.ModeSavePath
}

func (h *Handler) activeInput() *textinput.Model {
	if h.currentMode == types.ModeSavePath {
		return h.prompt
	}
	return h.query
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		input := h.activeInput()
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode switches modes outside of key handling. The save prompt is
// reset to data; the search entry keeps its text.
func (h *Handler) ChangeMode(mode types.Mode, data string) tea.Cmd {
	h.currentMode = mode
	switch mode {
	case types.ModeQuery:
		h.prompt.Blur()
		h.query.Focus()
		h.query.CursorEnd()
		return textinput.Blink
	case types.ModeSavePath:
		h.query.Blur()
		h.prompt.Reset()
		h.prompt.SetValue(data)
		h.prompt.CursorEnd()
		h.prompt.Focus()
		return textinput.Blink
	default:
		h.query.Blur()
		h.prompt.Blur()
		return nil
	}
}

// SetQuery replaces the search entry text
func (h *Handler) SetQuery(text string) {
	h.query.SetValue(text)
	h.query.CursorEnd()
}
