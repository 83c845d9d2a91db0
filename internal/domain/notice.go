package domain

import (
	"context"
	"errors"
	"fmt"
)

// NoticeKind is the severity of a user-facing notice
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a modal message shown to the user after an action
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// Informational notices
var (
	NoticeNoResults = Notice{Kind: NoticeInfo, Title: "No Results", Message: "No files or directories found."}
	NoticeCopied    = Notice{Kind: NoticeInfo, Title: "Copied", Message: "Path copied to clipboard!"}
)

// NoticeSaved reports a successful save
func NoticeSaved(path string) Notice {
	return Notice{Kind: NoticeInfo, Title: "Saved", Message: fmt.Sprintf("Results saved to %s", path)}
}

// NoticeFor maps an error from a search or result action onto the notice shown to the user
func NoticeFor(err error) Notice {
	var selErr *SelectionError
	switch {
	case errors.Is(err, ErrEmptyQuery):
		return Notice{Kind: NoticeWarning, Title: "Input Error", Message: "Please enter a search query!"}
	case errors.Is(err, ErrToolNotFound):
		return Notice{Kind: NoticeError, Title: "Error", Message: "The 'fd' command is not installed or not found in PATH."}
	case errors.As(err, &selErr):
		return Notice{Kind: NoticeWarning, Title: "Selection Error", Message: fmt.Sprintf("Please select an item to %s.", selErr.Verb)}
	case errors.Is(err, ErrStalePath):
		return Notice{Kind: NoticeError, Title: "Error", Message: "The selected file or directory no longer exists."}
	case errors.Is(err, ErrNothingToSave):
		return Notice{Kind: NoticeWarning, Title: "No Results", Message: "No search results to save!"}
	case errors.Is(err, ErrNotAFile):
		return Notice{Kind: NoticeInfo, Title: "Preview", Message: "Only regular files can be previewed."}
	case errors.Is(err, context.Canceled):
		return Notice{Kind: NoticeInfo, Title: "Cancelled", Message: "Search cancelled."}
	default:
		return Notice{Kind: NoticeError, Title: "Error", Message: fmt.Sprintf("An error occurred: %v", err)}
	}
}
