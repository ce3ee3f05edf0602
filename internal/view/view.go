// Package view derives the visible list of records for a folder from the
// store: category and text filters followed by one of the sort options.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nikbrunner/marks/internal/model"
)

// SortOption selects how links are ordered in a listing.
type SortOption int

const (
	SortCustom SortOption = iota // stored order, folders and links interleaved
	SortNewest
	SortOldest
	SortTitleAsc
	SortTitleDesc
	SortDomain
)

var sortNames = []string{"custom", "newest", "oldest", "title", "title-desc", "domain"}

// AllCategories disables the category filter.
const AllCategories = "all"

func (o SortOption) String() string {
	if o < 0 || int(o) >= len(sortNames) {
		return "custom"
	}
	return sortNames[o]
}

// Next cycles to the following sort option.
func (o SortOption) Next() SortOption {
	return SortOption((int(o) + 1) % len(sortNames))
}

// ParseSortOption maps a name produced by String back to its option.
func ParseSortOption(s string) (SortOption, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortCustom, nil
	}
	for i, name := range sortNames {
		if name == s {
			return SortOption(i), nil
		}
	}
	return SortCustom, fmt.Errorf("unknown sort option %q", s)
}

// Filter narrows a listing.
type Filter struct {
	ParentID *string // folder being listed; nil = root
	Category string  // "" or AllCategories = any; applies to links only
	Query    string  // case-insensitive substring over title, url, domain, category
	Global   bool    // with a non-empty Query, search every folder instead of ParentID
}

// Active reports whether any narrowing beyond the folder scope applies.
func (f Filter) Active() bool {
	return f.categoryActive() || strings.TrimSpace(f.Query) != ""
}

func (f Filter) categoryActive() bool {
	return f.Category != "" && f.Category != AllCategories
}

// Match reports whether a record passes the category and text filters.
// The folder scope is not checked here.
func (f Filter) Match(b model.Bookmark) bool {
	if f.categoryActive() && !b.IsFolder() && !strings.EqualFold(b.Category, f.Category) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{b.Title, b.URL, b.Domain, b.Category} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// List returns the visible records. Under SortCustom the stored order is
// kept as is. Every other option lists folders first, in stored order,
// followed by the links sorted stably by the option.
func List(store *model.Store, filter Filter, opt SortOption) []model.Bookmark {
	global := filter.Global && strings.TrimSpace(filter.Query) != ""

	var candidates []model.Bookmark
	if global {
		candidates = store.Bookmarks
	} else {
		candidates = store.Children(filter.ParentID)
	}

	var folders, links []model.Bookmark
	var mixed []model.Bookmark
	for _, b := range candidates {
		if !filter.Match(b) {
			continue
		}
		mixed = append(mixed, b)
		if b.IsFolder() {
			folders = append(folders, b)
		} else {
			links = append(links, b)
		}
	}

	if opt == SortCustom {
		return mixed
	}

	sortLinks(links, opt)

	result := make([]model.Bookmark, 0, len(folders)+len(links))
	result = append(result, folders...)
	return append(result, links...)
}

func sortLinks(links []model.Bookmark, opt SortOption) {
	var less func(a, b model.Bookmark) bool
	switch opt {
	case SortNewest:
		less = func(a, b model.Bookmark) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortOldest:
		less = func(a, b model.Bookmark) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortTitleAsc:
		less = func(a, b model.Bookmark) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortTitleDesc:
		less = func(a, b model.Bookmark) bool { return strings.ToLower(a.Title) > strings.ToLower(b.Title) }
	case SortDomain:
		less = func(a, b model.Bookmark) bool { return a.Domain < b.Domain }
	default:
		return
	}
	sort.SliceStable(links, func(i, j int) bool { return less(links[i], links[j]) })
}
