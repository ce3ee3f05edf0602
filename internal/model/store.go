package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("bookmark not found")
	ErrDuplicateID     = errors.New("bookmark id already exists")
	ErrParentNotFolder = errors.New("parent is not a folder")
	ErrCycle           = errors.New("folder cannot be moved into itself")
	ErrNotSiblings     = errors.New("records do not share a parent")
)

// Store holds every link and folder as one flat ordered sequence. The
// sequence order is the custom (manual) order.
type Store struct {
	Bookmarks []Bookmark
}

// NewStore creates an empty Store with an initialized slice.
func NewStore() *Store {
	return &Store{
		Bookmarks: []Bookmark{},
	}
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.Bookmarks)
}

// Add appends a record. The parent, when set, must be an existing folder.
func (s *Store) Add(b Bookmark) error {
	if s.indexOf(b.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
	}
	if err := s.checkParent(b.ParentID); err != nil {
		return err
	}
	if b.Category == "" {
		b.Category = DefaultCategory
	}
	s.Bookmarks = append(s.Bookmarks, b)
	return nil
}

// Get finds a record by ID, returns nil if not found.
func (s *Store) Get(id string) *Bookmark {
	if i := s.indexOf(id); i >= 0 {
		return &s.Bookmarks[i]
	}
	return nil
}

// Children returns the records with the given parent in stored order.
// Pass nil for root level records.
func (s *Store) Children(parentID *string) []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if ptrEqual(b.ParentID, parentID) {
			result = append(result, b)
		}
	}
	return result
}

// Links returns every link in stored order.
func (s *Store) Links() []Bookmark {
	var result []Bookmark
	for _, b := range s.Bookmarks {
		if !b.IsFolder() {
			result = append(result, b)
		}
	}
	return result
}

// UpdateParams holds the editable fields of a record. Nil fields are left
// unchanged.
type UpdateParams struct {
	Title    *string
	URL      *string
	Category *string
}

// Update edits a record in place. Changing the URL refreshes the domain.
func (s *Store) Update(id string, params UpdateParams) error {
	b := s.Get(id)
	if b == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if params.Title != nil {
		b.Title = strings.TrimSpace(*params.Title)
	}
	if params.URL != nil && !b.IsFolder() {
		b.URL = strings.TrimSpace(*params.URL)
		b.Domain = DomainOf(b.URL)
	}
	if params.Category != nil {
		b.Category = categoryOrDefault(*params.Category)
	}
	return nil
}

// Delete removes the record and, for folders, every descendant. It returns
// the removed IDs, the record itself first. Survivors keep their order.
func (s *Store) Delete(id string) ([]string, error) {
	if s.indexOf(id) < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	removed := append([]string{id}, s.Descendants(id)...)
	doomed := make(map[string]bool, len(removed))
	for _, r := range removed {
		doomed[r] = true
	}

	kept := s.Bookmarks[:0]
	for _, b := range s.Bookmarks {
		if !doomed[b.ID] {
			kept = append(kept, b)
		}
	}
	// Clear the tail so removed records are not retained by the backing array.
	for i := len(kept); i < len(s.Bookmarks); i++ {
		s.Bookmarks[i] = Bookmark{}
	}
	s.Bookmarks = kept

	return removed, nil
}

// Clear removes every record.
func (s *Store) Clear() {
	s.Bookmarks = []Bookmark{}
}

// Categories returns the distinct category labels in first-seen order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var result []string
	for _, b := range s.Bookmarks {
		c := b.Category
		if c == "" {
			c = DefaultCategory
		}
		if !seen[c] {
			seen[c] = true
			result = append(result, c)
		}
	}
	return result
}

// HasID reports whether a record with the given ID exists.
func (s *Store) HasID(id string) bool {
	return s.indexOf(id) >= 0
}

// HasURL reports whether a link with the given URL exists.
func (s *Store) HasURL(rawURL string) bool {
	for _, b := range s.Bookmarks {
		if !b.IsFolder() && b.URL == rawURL {
			return true
		}
	}
	return false
}

// Merge appends the records whose IDs are not yet present, in the given
// order. Records repeated within the batch count once. Merged records whose
// parent cannot be resolved to a folder end up at root level.
func (s *Store) Merge(records []Bookmark) (added, skipped int) {
	start := len(s.Bookmarks)
	for _, r := range records {
		if s.indexOf(r.ID) >= 0 {
			skipped++
			continue
		}
		if r.Category == "" {
			r.Category = DefaultCategory
		}
		s.Bookmarks = append(s.Bookmarks, r)
		added++
	}

	// Parents may arrive after their children in the batch, so resolve once
	// everything is in.
	for i := start; i < len(s.Bookmarks); i++ {
		if s.checkParent(s.Bookmarks[i].ParentID) != nil {
			s.Bookmarks[i].ParentID = nil
		}
	}
	s.breakCycles(start)

	return added, skipped
}

// Reconcile prepares records that carry fresh IDs, such as a browser HTML
// export, for Merge. An incoming folder whose title already exists under the
// same parent is mapped onto that folder, and an incoming link whose URL is
// already saved in its folder is dropped. Records must list parents before
// their children. Returns the records left to merge and how many were dropped.
func (s *Store) Reconcile(records []Bookmark) (kept []Bookmark, dropped int) {
	remap := make(map[string]string)
	for _, r := range records {
		if r.ParentID != nil {
			if id, ok := remap[*r.ParentID]; ok {
				r.ParentID = &id
			}
		}
		if r.IsFolder() {
			if existing := s.childFolder(r.ParentID, r.Title); existing != nil {
				remap[r.ID] = existing.ID
				dropped++
				continue
			}
		} else if s.hasURLIn(r.ParentID, r.URL) {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	return kept, dropped
}

func (s *Store) childFolder(parentID *string, title string) *Bookmark {
	for i := range s.Bookmarks {
		b := &s.Bookmarks[i]
		if b.IsFolder() && b.Title == title && ptrEqual(b.ParentID, parentID) {
			return b
		}
	}
	return nil
}

func (s *Store) hasURLIn(parentID *string, rawURL string) bool {
	for _, b := range s.Bookmarks {
		if !b.IsFolder() && b.URL == rawURL && ptrEqual(b.ParentID, parentID) {
			return true
		}
	}
	return false
}

// breakCycles re-roots merged folders whose ancestor chain leads back to
// themselves. A record below a loop it is not part of keeps its parent; the
// loop is cut when its own members are visited. Only records at index >=
// start are considered.
func (s *Store) breakCycles(start int) {
	for i := start; i < len(s.Bookmarks); i++ {
		id := s.Bookmarks[i].ID
		seen := map[string]bool{id: true}
		p := s.Bookmarks[i].ParentID
		for p != nil {
			if *p == id {
				s.Bookmarks[i].ParentID = nil
				break
			}
			if seen[*p] {
				break
			}
			seen[*p] = true
			parent := s.Get(*p)
			if parent == nil {
				break
			}
			p = parent.ParentID
		}
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) checkParent(parentID *string) error {
	if parentID == nil {
		return nil
	}
	parent := s.Get(*parentID)
	if parent == nil {
		return fmt.Errorf("%w: parent %s", ErrNotFound, *parentID)
	}
	if !parent.IsFolder() {
		return fmt.Errorf("%w: %s", ErrParentNotFolder, *parentID)
	}
	return nil
}

// ptrEqual compares two string pointers for equality.
func ptrEqual(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
