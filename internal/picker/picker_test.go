package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/marks/internal/model"
	"github.com/nikbrunner/marks/internal/search"
	"github.com/nikbrunner/marks/internal/tui/layout"
)

func gitResults() []search.SearchResult {
	return []search.SearchResult{
		{Bookmark: &model.Bookmark{ID: "b1", Title: "GitHub", URL: "https://github.com"}, MatchedIndexes: []int{0, 1, 2}},
		{Bookmark: &model.Bookmark{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"}, MatchedIndexes: []int{0, 1, 2}},
		{Bookmark: &model.Bookmark{ID: "b3", Title: "Gitea", URL: "https://gitea.io"}, MatchedIndexes: []int{0, 1, 2}},
	}
}

func update(p Picker, msg tea.Msg) (Picker, tea.Cmd) {
	m, cmd := p.Update(msg)
	return m.(Picker), cmd
}

func TestPicker_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"initial", nil, 0},
		{"j moves down", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'j'}}}, 1},
		{"down arrow", []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
		{"ctrl+n", []tea.KeyMsg{{Type: tea.KeyCtrlN}}, 1},
		{"k at top stays", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'k'}}}, 0},
		{"j past bottom stays", []tea.KeyMsg{
			{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown},
		}, 2},
		{"down then up", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyUp}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(gitResults(), "git")
			for _, k := range tt.keys {
				p, _ = update(p, k)
			}
			if p.cursor != tt.want {
				t.Errorf("expected cursor %d, got %d", tt.want, p.cursor)
			}
		})
	}
}

func TestPicker_Select(t *testing.T) {
	results := gitResults()
	p := New(results, "git")

	p, _ = update(p, tea.KeyMsg{Type: tea.KeyDown})
	p, cmd := update(p, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected quit command after selection")
	}
	if got := p.SelectedBookmark(); got != results[1].Bookmark {
		t.Errorf("expected GitLab selected, got %v", got)
	}
	if p.Cancelled() {
		t.Error("selection is not a cancel")
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		t.Run(k.String(), func(t *testing.T) {
			p, cmd := update(New(gitResults(), "git"), k)
			if !p.Cancelled() {
				t.Error("expected cancelled")
			}
			if cmd == nil {
				t.Error("expected quit command after cancel")
			}
			if p.SelectedBookmark() != nil {
				t.Error("expected no selection when cancelled")
			}
		})
	}
}

func TestPicker_NoSelectionBeforeEnter(t *testing.T) {
	p := New(gitResults(), "git")
	if p.SelectedBookmark() != nil {
		t.Error("expected nil before Enter")
	}
}

func TestPicker_View(t *testing.T) {
	p := New(gitResults(), "git")
	out := layout.StripANSI(p.View())

	for _, want := range []string{"Search: git (3 results)", "> GitHub", "  GitLab", "https://gitea.io"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPicker_View_ScrollsToCursor(t *testing.T) {
	p := New(gitResults(), "git")
	p, _ = update(p, tea.WindowSizeMsg{Width: 80, Height: 6}) // room for a single result
	p, _ = update(p, tea.KeyMsg{Type: tea.KeyDown})
	p, _ = update(p, tea.KeyMsg{Type: tea.KeyDown})

	out := layout.StripANSI(p.View())
	if !strings.Contains(out, "> Gitea") {
		t.Errorf("expected selected result visible, got:\n%s", out)
	}
	if strings.Contains(out, "GitHub") {
		t.Errorf("expected first result scrolled out, got:\n%s", out)
	}
}
