package model

import (
	"fmt"
	"strings"
)

// Descendants returns the IDs of every record below the given folder,
// breadth first. Links have no descendants.
func (s *Store) Descendants(id string) []string {
	var result []string
	seen := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, b := range s.Bookmarks {
			if b.ParentID == nil || *b.ParentID != current || seen[b.ID] {
				continue
			}
			seen[b.ID] = true
			result = append(result, b.ID)
			if b.IsFolder() {
				queue = append(queue, b.ID)
			}
		}
	}
	return result
}

// Path returns the slash separated folder path of a record, e.g.
// "/Development/Go". Root is "/".
func (s *Store) Path(id *string) string {
	if id == nil {
		return "/"
	}
	var parts []string
	seen := make(map[string]bool)
	for id != nil && !seen[*id] {
		seen[*id] = true
		b := s.Get(*id)
		if b == nil {
			break
		}
		parts = append([]string{b.Title}, parts...)
		id = b.ParentID
	}
	return "/" + strings.Join(parts, "/")
}

// FolderByPath resolves a path produced by Path back to a folder ID.
// Returns nil for root; ErrNotFound when a segment has no matching folder.
func (s *Store) FolderByPath(path string) (*string, error) {
	var current *string
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		var next *string
		for _, b := range s.Children(current) {
			if b.IsFolder() && b.Title == part {
				id := b.ID
				next = &id
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: folder %q", ErrNotFound, path)
		}
		current = next
	}
	return current, nil
}

// Move re-parents a record. A folder cannot move into itself or one of its
// descendants. The record keeps its position in the flat sequence.
func (s *Store) Move(id string, parentID *string) error {
	b := s.Get(id)
	if b == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.checkParent(parentID); err != nil {
		return err
	}
	if parentID != nil {
		if *parentID == id {
			return ErrCycle
		}
		for _, d := range s.Descendants(id) {
			if d == *parentID {
				return ErrCycle
			}
		}
	}
	b.ParentID = parentID
	return nil
}

// Reorder moves the dragged record to the target's position in the flat
// sequence: removed from its index, then inserted at the target's index.
// Both records must share a parent.
func (s *Store) Reorder(draggedID, targetID string) error {
	if draggedID == targetID {
		return nil
	}
	from := s.indexOf(draggedID)
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, draggedID)
	}
	to := s.indexOf(targetID)
	if to < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, targetID)
	}
	if !ptrEqual(s.Bookmarks[from].ParentID, s.Bookmarks[to].ParentID) {
		return ErrNotSiblings
	}

	s.moveIndex(from, to)
	return nil
}

// MoveUp swaps a record with its previous sibling in stored order.
// Returns false when the record is already first.
func (s *Store) MoveUp(id string) (bool, error) {
	return s.step(id, -1)
}

// MoveDown swaps a record with its next sibling in stored order.
// Returns false when the record is already last.
func (s *Store) MoveDown(id string) (bool, error) {
	return s.step(id, 1)
}

func (s *Store) step(id string, dir int) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	parent := s.Bookmarks[i].ParentID
	for j := i + dir; j >= 0 && j < len(s.Bookmarks); j += dir {
		if ptrEqual(s.Bookmarks[j].ParentID, parent) {
			s.Bookmarks[i], s.Bookmarks[j] = s.Bookmarks[j], s.Bookmarks[i]
			return true, nil
		}
	}
	return false, nil
}

// moveIndex removes the element at from and inserts it at to.
func (s *Store) moveIndex(from, to int) {
	item := s.Bookmarks[from]
	if from < to {
		copy(s.Bookmarks[from:to], s.Bookmarks[from+1:to+1])
	} else {
		copy(s.Bookmarks[to+1:from+1], s.Bookmarks[to:from])
	}
	s.Bookmarks[to] = item
}
