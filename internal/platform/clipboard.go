package platform

import "github.com/atotto/clipboard"

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is backed by the OS clipboard tools
type SystemClipboard struct{}

// WriteAll replaces the clipboard contents
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend was found
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
