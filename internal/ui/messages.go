package ui

import "flashfind/internal/domain"

// searchResultMsg carries the outcome of one fd run
type searchResultMsg struct {
	seq     int // matches Model.searchSeq for the search that is still current
	query   domain.Query
	results domain.ResultSet
	err     error
}

// previewPagerMsg contains the result of a preview pager command
type previewPagerMsg struct {
	path string
	err  error
}

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct {
	id int
}

// quitMsg signals that the application should quit
type quitMsg struct {
	saveConfig bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
