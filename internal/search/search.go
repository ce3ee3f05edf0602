// Package search ranks links for quick-open by fuzzy matching their
// titles and, failing that, their domains.
package search

import (
	"sort"
	"strings"

	"github.com/nikbrunner/marks/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Bookmark *model.Bookmark
	// MatchedIndexes point into Bookmark.Title. Empty when only the domain
	// matched.
	MatchedIndexes []int
	Score          int
}

// linkSource adapts links to fuzzy.Source over one field.
type linkSource struct {
	links []*model.Bookmark
	field func(*model.Bookmark) string
}

func (s linkSource) String(i int) string { return s.field(s.links[i]) }
func (s linkSource) Len() int            { return len(s.links) }

func title(b *model.Bookmark) string  { return b.Title }
func domain(b *model.Bookmark) string { return b.Domain }

// FuzzySearchBookmarks searches all links by title and domain. Folders are
// not candidates. Results are sorted by score, best first; a link matching
// both fields keeps the better score and its title highlights.
func FuzzySearchBookmarks(store *model.Store, query string) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	all := store.Links()
	links := make([]*model.Bookmark, len(all))
	for i := range all {
		links[i] = &all[i]
	}

	var results []SearchResult
	byLink := make(map[int]int) // link index -> results index

	for _, m := range fuzzy.FindFrom(query, linkSource{links, title}) {
		byLink[m.Index] = len(results)
		results = append(results, SearchResult{
			Bookmark:       links[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		})
	}

	for _, m := range fuzzy.FindFrom(query, linkSource{links, domain}) {
		if i, ok := byLink[m.Index]; ok {
			if m.Score > results[i].Score {
				results[i].Score = m.Score
			}
			continue
		}
		byLink[m.Index] = len(results)
		results = append(results, SearchResult{Bookmark: links[m.Index], Score: m.Score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
