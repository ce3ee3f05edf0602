package layout

// Split holds the calculated widths of the list and detail panes.
type Split struct {
	List   int
	Detail int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateSplit divides the terminal width between the list pane and the
// detail pane. Neither pane gets less than MinWidth.
func CalculateSplit(terminalWidth int, cfg PaneConfig) Split {
	usable := terminalWidth - cfg.WidthOffset
	list := usable * cfg.ListWidthPercent / 100
	if list < cfg.MinWidth {
		list = cfg.MinWidth
	}
	detail := usable - list
	if detail < cfg.MinWidth {
		detail = cfg.MinWidth
	}
	return Split{List: list, Detail: detail}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateVisibleHeight computes the visible item count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, clamped to the valid range.
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}
	if maxOffset := total - viewportHeight; offset > maxOffset {
		offset = maxOffset
	}
	return offset
}
