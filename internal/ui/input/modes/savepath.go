package modes

import (
	"flashfind/internal/ui/input/types"
	"github.com/charmbracelet/bubbles/textinput"
)

// SavePathMode asks for the file the results are written to
type SavePathMode struct {
	TextInputMode
}

func NewSavePathMode(ti *textinput.Model) *SavePathMode {
	return &SavePathMode{
		TextInputMode: NewTextInputMode(types.ModeSavePath, "save", ti),
	}
}
