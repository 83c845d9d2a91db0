package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type DeselectAction struct{}

func (a DeselectAction) Type() string { return "deselect" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search actions
type ToggleRegexAction struct{}

func (a ToggleRegexAction) Type() string { return "toggle_regex" }

type CancelSearchAction struct{}

func (a CancelSearchAction) Type() string { return "cancel_search" }

// Result actions
type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

type CopyPathAction struct{}

func (a CopyPathAction) Type() string { return "copy_path" }

type OpenFolderAction struct{}

func (a OpenFolderAction) Type() string { return "open_folder" }

type PreviewAction struct{}

func (a PreviewAction) Type() string { return "preview" }

type ClearResultsAction struct{}

func (a ClearResultsAction) Type() string { return "clear_results" }

type SaveResultsAction struct{}

func (a SaveResultsAction) Type() string { return "save_results" }

type ConfirmOverwriteAction struct {
	Confirmed bool
}

func (a ConfirmOverwriteAction) Type() string { return "confirm_overwrite" }

// UI actions
type DismissNoticeAction struct{}

func (a DismissNoticeAction) Type() string { return "dismiss_notice" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
