package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/marks/internal/fetcher"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/storage"
	"github.com/nikbrunner/marks/internal/tui/layout"
	"github.com/nikbrunner/marks/internal/view"
	"go.uber.org/zap"
)

// Persister saves the collection and the listing preferences.
// *storage.Collection satisfies it.
type Persister interface {
	Save(ctx context.Context, store *model.Store) error
	SavePreferences(ctx context.Context, prefs storage.Preferences) error
}

// TitleFetcher resolves the page title of a URL. *fetcher.Fetcher satisfies it.
type TitleFetcher interface {
	Title(ctx context.Context, rawURL string) string
}

// App is the main bubbletea model for the bookmark manager.
type App struct {
	store     *model.Store
	persister Persister
	fetcher   TitleFetcher
	openURL   func(string) error
	log       *zap.Logger

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode    Mode
	browser BrowserNav
	items   []model.Bookmark // visible records of the current listing
	filter  view.Filter      // ParentID is taken from browser on refresh
	sort    view.SortOption
	modal   ModalState
	search  SearchState

	confirmDelete bool
	cutID         string // record waiting to be pasted, "" when none

	// For gg command
	lastKeyWasG bool

	messageText string
	messageType MessageType

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store       *model.Store
	Persister   Persister            // optional, changes stay in memory if nil
	Preferences *storage.Preferences // optional, defaults if nil
	Fetcher     TitleFetcher         // optional, titles fall back to the domain if nil
	OpenURL     func(string) error   // optional, uses OpenURL if nil
	Logger      *zap.Logger          // optional
	Keys        *KeyMap              // optional, uses default if nil
	Styles      *Styles              // optional, uses default if nil
}

// titleFetchedMsg carries the result of an asynchronous title fetch.
type titleFetchedMsg struct {
	url      string
	title    string
	parentID *string
	category string
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}
	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}
	prefs := storage.DefaultPreferences()
	if params.Preferences != nil {
		prefs = *params.Preferences
	}
	log := params.Logger
	if log == nil {
		log = zap.NewNop()
	}
	openURL := params.OpenURL
	if openURL == nil {
		openURL = OpenURL
	}
	store := params.Store
	if store == nil {
		store = model.NewStore()
	}

	if prefs.Category == "" {
		prefs.Category = view.AllCategories
	}
	sortOpt, err := view.ParseSortOption(prefs.Sort)
	if err != nil {
		log.Warn("ignoring stored sort preference", zap.Error(err))
	}

	cfg := layout.DefaultConfig()
	app := App{
		store:         store,
		persister:     params.Persister,
		fetcher:       params.Fetcher,
		openURL:       openURL,
		log:           log,
		keys:          keys,
		styles:        styles,
		layoutConfig:  cfg,
		filter:        view.Filter{Category: prefs.Category},
		sort:          sortOpt,
		modal:         NewModalState(cfg),
		search:        NewSearchState(cfg),
		confirmDelete: prefs.ConfirmDelete,
		width:         80,
		height:        24,
	}

	app.refreshItems()
	return app
}

// Cursor returns the current cursor position.
func (a App) Cursor() int { return a.browser.Cursor }

// CurrentFolderID returns the ID of the current folder (nil for root).
func (a App) CurrentFolderID() *string { return a.browser.CurrentFolderID }

// Items returns the visible records.
func (a App) Items() []model.Bookmark { return a.items }

// Mode returns the interaction mode.
func (a App) Mode() Mode { return a.mode }

// Store returns the underlying store.
func (a App) Store() *model.Store { return a.store }

// Sort returns the active sort option.
func (a App) Sort() view.SortOption { return a.sort }

// Filter returns the active filter.
func (a App) Filter() view.Filter { return a.filter }

// ConfirmDelete reports whether deletes ask for confirmation.
func (a App) ConfirmDelete() bool { return a.confirmDelete }

// Message returns the current status message.
func (a App) Message() string { return a.messageText }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case titleFetchedMsg:
		// The dialog may have been cancelled while the fetch was running.
		if a.mode != ModeFetchingTitle || a.modal.PendingURL != msg.url {
			return a, nil
		}
		a.mode = ModeNormal
		a.addLink(msg.url, msg.title, msg.parentID, msg.category)
		a.modal.Reset()
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeNormal:
			return a.updateNormal(msg)
		case ModeAddLink, ModeAddFolder, ModeEdit, ModeCategory:
			return a.updateForm(msg)
		case ModeFetchingTitle:
			if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
				a.mode = ModeNormal
				a.modal.Reset()
				a.setMessage(MessageInfo, "Cancelled")
			}
			return a, nil
		case ModeConfirmDelete, ModeConfirmClear:
			return a.updateConfirm(msg)
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeHelp:
			if msg.Type == tea.KeyEsc || key.Matches(msg, a.keys.Help) || key.Matches(msg, a.keys.Quit) {
				a.mode = ModeNormal
			}
			return a, nil
		}
	}

	// Cursor blink and other input messages.
	if input := a.focusedInput(); input != nil {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.browser.Cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false
	a.messageText = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case msg.Type == tea.KeyEsc:
		if a.filter.Query != "" {
			a.clearQuery()
		} else if a.cutID != "" {
			a.cutID = ""
			a.setMessage(MessageInfo, "Cut cancelled")
		}

	case key.Matches(msg, a.keys.Down):
		if a.browser.Cursor < len(a.items)-1 {
			a.browser.Cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.browser.Cursor > 0 {
			a.browser.Cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.items) > 0 {
			a.browser.Cursor = len(a.items) - 1
		}

	case key.Matches(msg, a.keys.Right):
		a.open()

	case key.Matches(msg, a.keys.Left):
		a.back()

	case key.Matches(msg, a.keys.AddLink):
		a.modal.Reset()
		a.mode = ModeAddLink
		return a, a.modal.URLInput.Focus()

	case key.Matches(msg, a.keys.AddFolder):
		a.modal.Reset()
		a.mode = ModeAddFolder
		return a, a.modal.TitleInput.Focus()

	case key.Matches(msg, a.keys.Edit):
		item := a.selected()
		if item == nil {
			return a, nil
		}
		a.modal.Reset()
		a.modal.EditItemID = item.ID
		a.modal.TitleInput.SetValue(item.Title)
		if !item.IsFolder() {
			a.modal.URLInput.SetValue(item.URL)
		}
		a.mode = ModeEdit
		return a, a.modal.TitleInput.Focus()

	case key.Matches(msg, a.keys.Category):
		item := a.selected()
		if item == nil {
			return a, nil
		}
		a.modal.Reset()
		a.modal.EditItemID = item.ID
		a.modal.CategoryInput.SetValue(item.Category)
		a.mode = ModeCategory
		return a, a.modal.CategoryInput.Focus()

	case key.Matches(msg, a.keys.Delete):
		item := a.selected()
		if item == nil {
			return a, nil
		}
		if a.confirmDelete {
			a.modal.Reset()
			a.modal.EditItemID = item.ID
			a.mode = ModeConfirmDelete
			return a, nil
		}
		a.deleteItem(item.ID)

	case key.Matches(msg, a.keys.ClearAll):
		if a.store.Len() == 0 {
			a.setMessage(MessageInfo, "Nothing to clear")
			return a, nil
		}
		a.mode = ModeConfirmClear

	case key.Matches(msg, a.keys.Sort):
		a.sort = a.sort.Next()
		a.refreshItems()
		a.savePreferences()
		a.setMessage(MessageInfo, "Sort: "+a.sort.String())

	case key.Matches(msg, a.keys.Filter):
		a.cycleCategory()

	case key.Matches(msg, a.keys.Search):
		a.search.Input.SetValue(a.filter.Query)
		a.search.Input.CursorEnd()
		a.mode = ModeSearch
		return a, a.search.Input.Focus()

	case key.Matches(msg, a.keys.MoveDown):
		a.reorder(a.store.MoveDown)

	case key.Matches(msg, a.keys.MoveUp):
		a.reorder(a.store.MoveUp)

	case key.Matches(msg, a.keys.Cut):
		if item := a.selected(); item != nil {
			a.cutID = item.ID
			a.setMessage(MessageInfo, fmt.Sprintf("Cut %q, p to paste", item.Title))
		}

	case key.Matches(msg, a.keys.Paste):
		a.paste()

	case key.Matches(msg, a.keys.Place):
		a.place()

	case key.Matches(msg, a.keys.YankURL):
		item := a.selected()
		if item == nil || item.IsFolder() {
			return a, nil
		}
		if err := clipboard.WriteAll(item.URL); err != nil {
			a.setMessage(MessageError, "Copy failed: "+err.Error())
			return a, nil
		}
		a.setMessage(MessageSuccess, "Copied "+item.URL)

	case key.Matches(msg, a.keys.ToggleConfirm):
		a.confirmDelete = !a.confirmDelete
		a.savePreferences()
		if a.confirmDelete {
			a.setMessage(MessageInfo, "Delete confirmation on")
		} else {
			a.setMessage(MessageInfo, "Delete confirmation off")
		}

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

// updateForm handles the single and multi field dialogs.
func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.modal.Reset()
		return a, nil

	case tea.KeyTab, tea.KeyShiftTab:
		if a.mode == ModeEdit && a.editingLink() {
			a.modal.Focus = 1 - a.modal.Focus
			if a.modal.Focus == 0 {
				a.modal.URLInput.Blur()
				return a, a.modal.TitleInput.Focus()
			}
			a.modal.TitleInput.Blur()
			return a, a.modal.URLInput.Focus()
		}
		return a, nil

	case tea.KeyEnter:
		return a.submitForm()
	}

	input := a.focusedInput()
	if input == nil {
		return a, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return a, cmd
}

func (a App) submitForm() (tea.Model, tea.Cmd) {
	switch a.mode {
	case ModeAddLink:
		raw := strings.TrimSpace(a.modal.URLInput.Value())
		if raw == "" {
			a.setMessage(MessageError, "URL is required")
			return a, nil
		}
		url := fetcher.NormalizeURL(raw)
		parentID := a.browser.CurrentFolderID
		category := a.newRecordCategory()
		if a.fetcher == nil {
			a.mode = ModeNormal
			a.addLink(url, "", parentID, category)
			a.modal.Reset()
			return a, nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		a.modal.PendingURL = url
		a.modal.CancelFetch = cancel
		a.mode = ModeFetchingTitle
		return a, fetchTitleCmd(ctx, a.fetcher, url, parentID, category)

	case ModeAddFolder:
		name := strings.TrimSpace(a.modal.TitleInput.Value())
		if name == "" {
			a.setMessage(MessageError, "Name is required")
			return a, nil
		}
		folder := model.NewFolder(model.NewFolderParams{
			Name:     name,
			ParentID: a.browser.CurrentFolderID,
			Category: a.newRecordCategory(),
		})
		if err := a.store.Add(folder); err != nil {
			a.setMessage(MessageError, err.Error())
			return a, nil
		}
		a.afterChange(folder.ID)
		a.setMessage(MessageSuccess, "Added folder "+folder.Title)

	case ModeEdit:
		title := strings.TrimSpace(a.modal.TitleInput.Value())
		if title == "" {
			a.setMessage(MessageError, "Title is required")
			return a, nil
		}
		params := model.UpdateParams{Title: &title}
		if a.editingLink() {
			raw := strings.TrimSpace(a.modal.URLInput.Value())
			if raw == "" {
				a.setMessage(MessageError, "URL is required")
				return a, nil
			}
			url := fetcher.NormalizeURL(raw)
			params.URL = &url
		}
		if err := a.store.Update(a.modal.EditItemID, params); err != nil {
			a.setMessage(MessageError, err.Error())
			return a, nil
		}
		a.afterChange(a.modal.EditItemID)
		a.setMessage(MessageSuccess, "Saved "+title)

	case ModeCategory:
		category := a.modal.CategoryInput.Value()
		if err := a.store.Update(a.modal.EditItemID, model.UpdateParams{Category: &category}); err != nil {
			a.setMessage(MessageError, err.Error())
			return a, nil
		}
		a.afterChange(a.modal.EditItemID)
		if b := a.store.Get(a.modal.EditItemID); b != nil {
			a.setMessage(MessageSuccess, "Category: "+b.Category)
		}
	}

	a.mode = ModeNormal
	a.modal.Reset()
	return a, nil
}

func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter, msg.String() == "y":
		if a.mode == ModeConfirmClear {
			a.clearAll()
		} else {
			a.deleteItem(a.modal.EditItemID)
		}
		a.mode = ModeNormal
		a.modal.Reset()

	case msg.Type == tea.KeyEsc, msg.String() == "n", msg.String() == "q":
		a.mode = ModeNormal
		a.modal.Reset()
	}
	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.search.Input.Blur()
		a.mode = ModeNormal
		a.clearQuery()
		return a, nil

	case tea.KeyEnter:
		a.search.Input.Blur()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if a.browser.Cursor < len(a.items)-1 {
			a.browser.Cursor++
		}
		return a, nil

	case tea.KeyUp, tea.KeyCtrlP:
		if a.browser.Cursor > 0 {
			a.browser.Cursor--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.filter.Query = a.search.Input.Value()
	a.filter.Global = true
	a.browser.Cursor = 0
	a.refreshItems()
	return a, cmd
}

// open enters the selected folder or opens the selected link.
func (a *App) open() {
	item := a.selected()
	if item == nil {
		return
	}
	if item.IsFolder() {
		id := item.ID
		if a.filter.Query != "" {
			a.filter.Query = ""
			a.filter.Global = false
			a.search.Input.Reset()
		}
		a.browser.CurrentFolderID = &id
		a.browser.Cursor = 0
		a.refreshItems()
		return
	}
	if err := a.openURL(item.URL); err != nil {
		a.setMessage(MessageError, "Open failed: "+err.Error())
		return
	}
	a.setMessage(MessageInfo, "Opened "+item.Title)
}

// back leaves the current folder, or the search results when a query is
// active. The folder that was left gets the cursor.
func (a *App) back() {
	if a.filter.Query != "" {
		a.clearQuery()
		return
	}
	if a.browser.AtRoot() {
		return
	}
	left := *a.browser.CurrentFolderID
	var parentID *string
	if folder := a.store.Get(left); folder != nil {
		parentID = folder.ParentID
	}
	a.browser.CurrentFolderID = parentID
	a.refreshItems()
	a.selectID(left)
}

func (a *App) clearQuery() {
	a.filter.Query = ""
	a.filter.Global = false
	a.search.Input.Reset()
	a.browser.Cursor = 0
	a.refreshItems()
}

func (a *App) cycleCategory() {
	options := append([]string{view.AllCategories}, a.store.Categories()...)
	next := 0
	for i, c := range options {
		if strings.EqualFold(c, a.filter.Category) {
			next = (i + 1) % len(options)
			break
		}
	}
	a.filter.Category = options[next]
	a.browser.Cursor = 0
	a.refreshItems()
	a.savePreferences()
	a.setMessage(MessageInfo, "Category: "+a.filter.Category)
}

// reorder applies a keyboard reorder step to the selected record.
func (a *App) reorder(step func(id string) (bool, error)) {
	item := a.selected()
	if item == nil {
		return
	}
	if a.sort != view.SortCustom {
		a.setMessage(MessageInfo, "Reordering needs custom sort (o)")
		return
	}
	if a.filter.Query != "" {
		a.setMessage(MessageInfo, "Clear the search to reorder")
		return
	}
	moved, err := step(item.ID)
	if err != nil {
		a.setMessage(MessageError, err.Error())
		return
	}
	if moved {
		a.afterChange(item.ID)
	}
}

func (a *App) paste() {
	id, ok := a.cutItem()
	if !ok {
		return
	}
	if target := a.browser.CurrentFolderID; target != nil && a.store.Get(*target) == nil {
		a.browser.ResetToRoot()
		a.refreshItems()
		a.setMessage(MessageError, "Current folder no longer exists, back at root")
		return
	}
	err := a.store.Move(id, a.browser.CurrentFolderID)
	switch {
	case errors.Is(err, model.ErrCycle):
		a.setMessage(MessageError, "Cannot move a folder into itself")
		return
	case err != nil:
		a.setMessage(MessageError, err.Error())
		return
	}
	a.cutID = ""
	a.afterChange(id)
	if b := a.store.Get(id); b != nil {
		a.setMessage(MessageSuccess, "Moved "+b.Title)
	}
}

// place moves the cut record to the selected record's position in the
// stored order, moving it into the selected record's folder first if needed.
func (a *App) place() {
	id, ok := a.cutItem()
	if !ok {
		return
	}
	target := a.selected()
	if target == nil || target.ID == id {
		return
	}
	if a.sort != view.SortCustom {
		a.setMessage(MessageInfo, "Placing needs custom sort (o)")
		return
	}

	if cut := a.store.Get(id); !sameParent(cut.ParentID, target.ParentID) {
		if err := a.store.Move(id, target.ParentID); err != nil {
			if errors.Is(err, model.ErrCycle) {
				a.setMessage(MessageError, "Cannot move a folder into itself")
				return
			}
			a.setMessage(MessageError, err.Error())
			return
		}
	}
	if err := a.store.Reorder(id, target.ID); err != nil {
		a.setMessage(MessageError, err.Error())
		return
	}

	a.cutID = ""
	a.afterChange(id)
	if b := a.store.Get(id); b != nil {
		a.setMessage(MessageSuccess, fmt.Sprintf("Placed %s at %s", b.Title, target.Title))
	}
}

// cutItem returns the pending cut record, dropping it when it was deleted
// in the meantime.
func (a *App) cutItem() (string, bool) {
	if a.cutID == "" {
		a.setMessage(MessageInfo, "Nothing to paste")
		return "", false
	}
	if a.store.Get(a.cutID) == nil {
		a.cutID = ""
		a.setMessage(MessageError, "Cut item no longer exists")
		return "", false
	}
	return a.cutID, true
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (a *App) addLink(url, title string, parentID *string, category string) {
	duplicate := a.store.HasURL(url)
	link := model.NewLink(model.NewLinkParams{
		Title:    title,
		URL:      url,
		ParentID: parentID,
		Category: category,
	})
	if err := a.store.Add(link); err != nil {
		a.setMessage(MessageError, err.Error())
		return
	}
	a.afterChange(link.ID)
	if duplicate {
		a.setMessage(MessageInfo, "Added "+link.Title+" (URL was already saved)")
		return
	}
	a.setMessage(MessageSuccess, "Added "+link.Title)
}

func (a *App) deleteItem(id string) {
	title := ""
	var parentID *string
	if b := a.store.Get(id); b != nil {
		title = b.Title
		parentID = b.ParentID
	}
	removed, err := a.store.Delete(id)
	if err != nil {
		a.setMessage(MessageError, err.Error())
		return
	}
	for _, r := range removed {
		if r == a.cutID {
			a.cutID = ""
		}
		// Deleting the open folder, or one above it, from search results.
		if current := a.browser.CurrentFolderID; current != nil && *current == r {
			a.browser.CurrentFolderID = parentID
		}
	}
	a.save()
	a.refreshItems()
	if extra := len(removed) - 1; extra > 0 {
		a.setMessage(MessageSuccess, fmt.Sprintf("Deleted %s and %d nested items", title, extra))
		return
	}
	a.setMessage(MessageSuccess, "Deleted "+title)
}

func (a *App) clearAll() {
	a.store.Clear()
	a.cutID = ""
	a.browser.ResetToRoot()
	a.save()
	a.refreshItems()
	a.setMessage(MessageSuccess, "All bookmarks cleared")
}

// afterChange persists the store, rebuilds the listing and selects id.
func (a *App) afterChange(id string) {
	a.save()
	a.refreshItems()
	a.selectID(id)
}

// refreshItems rebuilds the visible listing for the current folder.
func (a *App) refreshItems() {
	filter := a.filter
	filter.ParentID = a.browser.CurrentFolderID
	a.items = view.List(a.store, filter, a.sort)

	if a.browser.Cursor >= len(a.items) {
		a.browser.Cursor = len(a.items) - 1
	}
	if a.browser.Cursor < 0 {
		a.browser.Cursor = 0
	}
}

func (a *App) selectID(id string) {
	for i, b := range a.items {
		if b.ID == id {
			a.browser.Cursor = i
			return
		}
	}
}

func (a App) selected() *model.Bookmark {
	if a.browser.Cursor < 0 || a.browser.Cursor >= len(a.items) {
		return nil
	}
	item := a.items[a.browser.Cursor]
	return &item
}

// newRecordCategory is the category given to records created while a
// category filter is active, so they stay visible.
func (a App) newRecordCategory() string {
	if a.filter.Category == view.AllCategories {
		return ""
	}
	return a.filter.Category
}

func (a App) editingLink() bool {
	b := a.store.Get(a.modal.EditItemID)
	return b != nil && !b.IsFolder()
}

func (a *App) focusedInput() *textinput.Model {
	switch a.mode {
	case ModeAddLink:
		return &a.modal.URLInput
	case ModeAddFolder:
		return &a.modal.TitleInput
	case ModeEdit:
		if a.modal.Focus == 1 {
			return &a.modal.URLInput
		}
		return &a.modal.TitleInput
	case ModeCategory:
		return &a.modal.CategoryInput
	case ModeSearch:
		return &a.search.Input
	}
	return nil
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

// save persists the store if a persister is configured.
func (a *App) save() {
	if a.persister == nil {
		return
	}
	if err := a.persister.Save(context.Background(), a.store); err != nil {
		a.log.Error("save failed", zap.Error(err))
		a.setMessage(MessageError, "Save failed: "+err.Error())
	}
}

func (a *App) savePreferences() {
	if a.persister == nil {
		return
	}
	prefs := storage.Preferences{
		Sort:          a.sort.String(),
		Category:      a.filter.Category,
		ConfirmDelete: a.confirmDelete,
	}
	if err := a.persister.SavePreferences(context.Background(), prefs); err != nil {
		a.log.Error("saving preferences failed", zap.Error(err))
		a.setMessage(MessageError, "Save failed: "+err.Error())
	}
}

func fetchTitleCmd(ctx context.Context, f TitleFetcher, url string, parentID *string, category string) tea.Cmd {
	return func() tea.Msg {
		return titleFetchedMsg{
			url:      url,
			title:    f.Title(ctx, url),
			parentID: parentID,
			category: category,
		}
	}
}
