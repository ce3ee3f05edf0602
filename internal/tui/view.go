package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/marks/internal/fetcher"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/tui/layout"
	"github.com/nikbrunner/marks/internal/view"
)

// renderView creates the complete browser view.
func (a App) renderView() string {
	switch a.mode {
	case ModeNormal, ModeSearch:
	case ModeHelp:
		return a.renderHelpOverlay()
	default:
		return a.renderModal()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	split := layout.CalculateSplit(a.width, a.layoutConfig.Pane)

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderListPane(split.List, paneHeight),
		a.renderDetailPane(split.Detail, paneHeight),
	)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderBreadcrumb(), columns, a.renderStatusBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderBreadcrumb renders the folder path, or the search scope, above the panes.
func (a App) renderBreadcrumb() string {
	path := "marks" + a.store.Path(a.browser.CurrentFolderID)
	if a.filter.Global && a.filter.Query != "" {
		path = "marks: all folders"
	}
	path, _ = layout.TruncateText(path, a.width-4, a.layoutConfig.Text)
	return a.styles.Breadcrumb.Render(path)
}

func (a App) renderListPane(width, height int) string {
	var content strings.Builder

	headerLines := 0
	switch {
	case a.mode == ModeSearch:
		content.WriteString("/" + a.search.Input.View() + "\n")
		headerLines = 1
	case a.filter.Query != "":
		content.WriteString(a.styles.Category.Render("/"+a.filter.Query) + "\n")
		headerLines = 1
	}

	visibleHeight := layout.CalculateVisibleHeight(height, headerLines)
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	if len(a.items) == 0 {
		if a.filter.Active() {
			content.WriteString(a.styles.Empty.Render("(no matches)"))
		} else {
			content.WriteString(a.styles.Empty.Render("(empty)"))
		}
	} else {
		offset := layout.CalculateViewportOffset(a.browser.Cursor, len(a.items), visibleHeight)
		end := offset + visibleHeight
		if end > len(a.items) {
			end = len(a.items)
		}
		for i := offset; i < end; i++ {
			content.WriteString(a.renderItem(a.items[i], i == a.browser.Cursor, itemWidth) + "\n")
		}
	}

	return a.styles.PaneActive.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderItem(b model.Bookmark, isCursor bool, maxWidth int) string {
	prefix, suffix := "  ", ""
	if b.IsFolder() {
		prefix = "▸ "
		suffix = "/"
	}

	line, _ := layout.TruncateWithPrefixSuffix(b.Title, maxWidth, prefix, suffix, a.layoutConfig.Text)

	switch {
	case isCursor:
		// Pad to fill width for highlight
		if pad := maxWidth - layout.VisibleWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return a.styles.ItemSelected.Render(line)
	case b.ID == a.cutID:
		return a.styles.ItemCut.Render(line)
	}
	return a.styles.Item.Render(line)
}

func (a App) renderDetailPane(width, height int) string {
	var content strings.Builder

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	truncate := func(s string) string {
		s, _ = layout.TruncateText(s, itemWidth, a.layoutConfig.Text)
		return s
	}

	if item := a.selected(); item != nil {
		content.WriteString(a.styles.Title.Render(truncate(item.Title)) + "\n\n")

		if item.IsFolder() {
			children := a.store.Children(&item.ID)
			nested := len(a.store.Descendants(item.ID))
			content.WriteString(a.styles.Empty.Render(fmt.Sprintf("%d items, %d nested", len(children), nested)) + "\n\n")
			for i, child := range children {
				if i >= layout.CalculateVisibleHeight(height, 6) {
					break
				}
				content.WriteString(a.renderItem(child, false, itemWidth) + "\n")
			}
		} else {
			content.WriteString(a.styles.URL.Render(truncate(item.URL)) + "\n")
			if item.Domain != "" {
				content.WriteString(a.styles.Domain.Render(truncate(item.Domain)) + "\n")
				content.WriteString(a.styles.Date.Render(truncate("icon: "+fetcher.FaviconURL(item.Domain))) + "\n")
			}
			content.WriteString("\n")
		}

		content.WriteString(a.styles.Category.Render("#"+item.Category) + "\n")
		if a.filter.Global && a.filter.Query != "" {
			content.WriteString(a.styles.Date.Render(truncate("in "+a.store.Path(item.ParentID))) + "\n")
		}
		if !item.CreatedAt.IsZero() {
			content.WriteString(a.styles.Date.Render("Created: "+item.CreatedAt.Format("2006-01-02")) + "\n")
		}
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderStatusBar renders the message line, the toggle states and the hints.
func (a App) renderStatusBar() string {
	lines := []string{a.renderMessageLine(), a.renderStatusToggles()}
	if hints := a.renderHints(a.contextualHints()); hints != "" {
		lines = append(lines, hints)
	}
	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	if a.messageText == "" {
		return ""
	}
	switch a.messageType {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.messageText)
	case MessageSuccess:
		return a.styles.Success.Render("✓ " + a.messageText)
	default:
		return a.styles.Info.Render(a.messageText)
	}
}

// renderStatusToggles renders the [sort:X] [cat:X] [cfm:X] indicators.
func (a App) renderStatusToggles() string {
	var status strings.Builder

	status.WriteString(a.styles.HintLabel.Render("Toggle "))
	status.WriteString(a.renderHints([]Hint{
		{Key: "o", Desc: "sort"},
		{Key: "f", Desc: "category"},
		{Key: "c", Desc: "confirm"},
	}))
	status.WriteString("  [sort:" + a.sort.String() + "]")

	category := a.filter.Category
	if category == "" {
		category = view.AllCategories
	}
	status.WriteString(" [cat:" + category + "]")

	if a.confirmDelete {
		status.WriteString(" [cfm:on]")
	} else {
		status.WriteString(" [cfm:off]")
	}
	return status.String()
}

// renderModal renders the current modal dialog.
func (a App) renderModal() string {
	var title, content strings.Builder
	hints := []Hint{{Key: "Enter", Desc: "save"}, {Key: "Esc", Desc: "cancel"}}

	switch a.mode {
	case ModeAddLink:
		title.WriteString("Add Link\n\n")
		content.WriteString("URL:\n")
		content.WriteString(a.modal.URLInput.View())
		content.WriteString("\n\n")
		content.WriteString(a.styles.Empty.Render("The title is fetched from the page."))

	case ModeFetchingTitle:
		title.WriteString("Add Link\n\n")
		content.WriteString(a.styles.URL.Render(a.modal.PendingURL) + "\n\n")
		content.WriteString(a.styles.Empty.Render("Fetching title..."))
		hints = []Hint{{Key: "Esc", Desc: "cancel"}}

	case ModeAddFolder:
		title.WriteString("Add Folder\n\n")
		content.WriteString("Name:\n")
		content.WriteString(a.modal.TitleInput.View())

	case ModeEdit:
		if a.editingLink() {
			title.WriteString("Edit Link\n\n")
			content.WriteString("Title:\n")
			content.WriteString(a.modal.TitleInput.View())
			content.WriteString("\n\nURL:\n")
			content.WriteString(a.modal.URLInput.View())
		} else {
			title.WriteString("Edit Folder\n\n")
			content.WriteString("Name:\n")
			content.WriteString(a.modal.TitleInput.View())
		}

	case ModeCategory:
		title.WriteString("Set Category\n\n")
		content.WriteString("Category:\n")
		content.WriteString(a.modal.CategoryInput.View())
		if categories := a.store.Categories(); len(categories) > 0 {
			content.WriteString("\n\n")
			content.WriteString(a.styles.Empty.Render("In use: " + strings.Join(categories, ", ")))
		}

	case ModeConfirmDelete:
		hints = []Hint{{Key: "y/Enter", Desc: "confirm"}, {Key: "n/Esc", Desc: "cancel"}}
		b := a.store.Get(a.modal.EditItemID)
		if b == nil {
			title.WriteString("Delete?\n\n")
			break
		}
		if b.IsFolder() {
			title.WriteString("Delete Folder?\n\n")
		} else {
			title.WriteString("Delete Link?\n\n")
		}
		content.WriteString("\"" + b.Title + "\"\n\n")
		if n := len(a.store.Descendants(b.ID)); n > 0 {
			content.WriteString(fmt.Sprintf("%d nested items will be deleted with it.\n\n", n))
		}
		content.WriteString(a.styles.Empty.Render("This action cannot be undone."))

	case ModeConfirmClear:
		hints = []Hint{{Key: "y/Enter", Desc: "confirm"}, {Key: "n/Esc", Desc: "cancel"}}
		title.WriteString("Clear All Bookmarks?\n\n")
		content.WriteString(fmt.Sprintf("%d records will be deleted.\n\n", a.store.Len()))
		content.WriteString(a.styles.Empty.Render("This action cannot be undone."))
	}

	content.WriteString("\n\n" + a.renderHintsInline(hints))

	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)
	modal := a.styles.Modal.Width(modalWidth).Render(a.styles.Title.Render(title.String()) + content.String())

	placed := lipgloss.Place(a.width, a.height-3, lipgloss.Center, lipgloss.Center, modal)
	return lipgloss.JoinVertical(lipgloss.Left, placed, a.renderMessageLine())
}

// renderHelpOverlay lists every binding, grouped in columns.
func (a App) renderHelpOverlay() string {
	var columns []string
	for _, group := range a.keys.helpKeys() {
		var col strings.Builder
		for _, b := range group {
			h := b.Help()
			col.WriteString(a.styles.HintKey.Render(fmt.Sprintf("%-9s", h.Key)) + " " + a.styles.HintDesc.Render(h.Desc) + "\n")
		}
		columns = append(columns, lipgloss.NewStyle().PaddingRight(4).Render(strings.TrimRight(col.String(), "\n")))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Keys"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		"",
		a.renderHints(a.contextualHints()),
	)
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, lipgloss.NewStyle().Padding(1, 2).Render(content))
}
