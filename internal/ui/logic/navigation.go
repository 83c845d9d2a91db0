package logic

// Navigator keeps the selected row of a flat list inside the viewport
type Navigator struct {
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 20}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(viewportOffset, viewportHeight, totalItems int) {
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of rows available to the list
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight changes the list height and keeps the offset in range
func (n *Navigator) SetViewportHeight(h int) {
	if h < 1 {
		h = 1
	}
	n.viewportHeight = h
	n.clamp(n.effectiveHeight())
}

// Reset scrolls back to the top for a list of total rows
func (n *Navigator) Reset(total int) {
	n.totalItems = total
	n.viewportOffset = 0
}

// PageSize is how far pgup/pgdn move the selection
func (n *Navigator) PageSize() int {
	size := n.viewportHeight - 2 // Leave some overlap
	if size < 1 {
		size = 1
	}
	return size
}

// Follow adjusts the viewport so that selected is visible and returns the new offset.
// A negative selected index leaves the viewport where it is.
func (n *Navigator) Follow(selected int) int {
	if selected < 0 {
		n.clamp(n.effectiveHeight())
		return n.viewportOffset
	}

	// If selected item is above viewport, scroll up
	if selected < n.viewportOffset {
		n.viewportOffset = selected
	}

	// Scrolling down can add the top indicator, so check against the new offset once more
	for i := 0; i < 2; i++ {
		h := n.effectiveHeight()
		if selected >= n.viewportOffset+h {
			n.viewportOffset = selected - h + 1
		}
	}

	n.clamp(n.effectiveHeight())
	return n.viewportOffset
}

func (n *Navigator) effectiveHeight() int {
	return EffectiveHeight(n.viewportOffset, n.viewportHeight, n.totalItems)
}

// EffectiveHeight is the number of list rows left once the scroll
// indicators for the given window are drawn. Always at least 1.
func EffectiveHeight(offset, height, total int) int {
	needsTopIndicator := offset > 0
	needsBottomIndicator := offset+height < total

	if !needsBottomIndicator && needsTopIndicator {
		remainingItems := total - offset
		if remainingItems > height-1 {
			needsBottomIndicator = true
		}
	}

	h := height
	if needsTopIndicator {
		h--
	}
	if needsBottomIndicator {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (n *Navigator) clamp(effectiveHeight int) {
	maxOffset := n.totalItems - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
