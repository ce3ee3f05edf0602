package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar: "j/k:move h:back l:open"
func (a App) renderHints(hints []Hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// contextualHints returns the hints for the current mode.
func (a App) contextualHints() []Hint {
	switch a.mode {
	case ModeNormal:
		hints := []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "h", Desc: "back"},
			{Key: "l", Desc: "open"},
			{Key: "/", Desc: "search"},
			{Key: "a/A", Desc: "add"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "del"},
		}
		if a.cutID != "" {
			hints = append(hints, Hint{Key: "p", Desc: "paste"})
			hints = append(hints, Hint{Key: "P", Desc: "place at cursor"})
		}
		return append(hints, Hint{Key: "?", Desc: "help"}, Hint{Key: "q", Desc: "quit"})
	case ModeSearch:
		return []Hint{
			{Key: "↑/↓", Desc: "move"},
			{Key: "Enter", Desc: "keep results"},
			{Key: "Esc", Desc: "clear"},
		}
	case ModeEdit:
		if a.editingLink() {
			return []Hint{{Key: "Tab", Desc: "next field"}, {Key: "Enter", Desc: "save"}, {Key: "Esc", Desc: "cancel"}}
		}
		return []Hint{{Key: "Enter", Desc: "save"}, {Key: "Esc", Desc: "cancel"}}
	case ModeAddLink, ModeAddFolder, ModeCategory:
		return []Hint{{Key: "Enter", Desc: "save"}, {Key: "Esc", Desc: "cancel"}}
	case ModeFetchingTitle:
		return []Hint{{Key: "Esc", Desc: "cancel"}}
	case ModeConfirmDelete, ModeConfirmClear:
		return []Hint{{Key: "y/Enter", Desc: "confirm"}, {Key: "n/Esc", Desc: "cancel"}}
	case ModeHelp:
		return []Hint{{Key: "?/q/Esc", Desc: "close"}}
	default:
		return nil
	}
}
