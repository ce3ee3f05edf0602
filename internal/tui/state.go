package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

// Mode is the interaction mode of the app.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddLink
	ModeFetchingTitle
	ModeAddFolder
	ModeEdit
	ModeCategory
	ModeConfirmDelete
	ModeConfirmClear
	ModeSearch
	ModeHelp
)

// MessageType selects how a status message is styled.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// ModalState holds the inputs of the add/edit dialogs.
type ModalState struct {
	TitleInput    textinput.Model
	URLInput      textinput.Model
	CategoryInput textinput.Model
	Focus         int    // index of the focused input in multi-field forms
	EditItemID    string // record being edited or deleted
	PendingURL    string // URL whose title is being fetched
	CancelFetch   context.CancelFunc
}

// NewModalState creates a ModalState with initialized inputs.
func NewModalState(cfg layout.LayoutConfig) ModalState {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = cfg.Input.TitleCharLimit
	titleInput.Width = cfg.Input.Width

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.Width

	categoryInput := textinput.New()
	categoryInput.Placeholder = "General"
	categoryInput.CharLimit = cfg.Input.CategoryCharLimit
	categoryInput.Width = cfg.Input.Width

	return ModalState{
		TitleInput:    titleInput,
		URLInput:      urlInput,
		CategoryInput: categoryInput,
	}
}

// Reset clears all inputs for a new dialog and cancels a pending title
// fetch.
func (m *ModalState) Reset() {
	if m.CancelFetch != nil {
		m.CancelFetch()
		m.CancelFetch = nil
	}
	m.TitleInput.Reset()
	m.TitleInput.Blur()
	m.URLInput.Reset()
	m.URLInput.Blur()
	m.CategoryInput.Reset()
	m.CategoryInput.Blur()
	m.Focus = 0
	m.EditItemID = ""
	m.PendingURL = ""
}

// SearchState holds the search input. The active query lives on the filter.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search all..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.Width
	return SearchState{Input: input}
}

// BrowserNav holds the position in the folder tree.
type BrowserNav struct {
	CurrentFolderID *string // nil = root
	Cursor          int
}

// AtRoot returns true if currently at root folder.
func (b *BrowserNav) AtRoot() bool {
	return b.CurrentFolderID == nil
}

// ResetToRoot resets navigation to root folder.
func (b *BrowserNav) ResetToRoot() {
	b.CurrentFolderID = nil
	b.Cursor = 0
}
