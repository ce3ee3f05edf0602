package layout

import (
	"strings"
	"testing"
)

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"folder row", "▸ Dev/", 6},
		{"styled", "\x1b[1;38;5;37mGo docs\x1b[0m", 7},
		{"cjk counts double", "日本語", 6},
		{"mixed", "Go 入門", 7},
		{"only escape codes", "\x1b[1m\x1b[0m", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"breadcrumb fits", "marks/Dev/Go", 12, "marks/Dev/Go", false},
		{"long url", "https://pkg.go.dev/net/http", 14, "https://pkg...", true},
		{"narrower than ellipsis", "https://go.dev", 2, "..", true},
		{"zero width", "https://go.dev", 0, "", true},
		{"cjk cut on rune boundary", "日本語のドキュメント", 9, "日本語...", true},
		{"cjk wide rune dropped whole", "日本語のドキュメント", 8, "日本...", true},
		{"cjk fits", "日本語", 6, "日本語", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.truncated)
			}
			if VisibleWidth(got) > tt.maxWidth && tt.maxWidth > 0 {
				t.Errorf("result %q is wider than %d", got, tt.maxWidth)
			}
		})
	}
}

func TestTruncateWithPrefixSuffix(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		prefix    string
		suffix    string
		want      string
		truncated bool
	}{
		{"folder fits", "Dev", 10, "▸ ", "/", "▸ Dev/", false},
		{"folder truncates", "Development", 12, "▸ ", "/", "▸ Develo.../", true},
		{"link truncates", "The Go Programming Language", 14, "  ", "", "  The Go Pr...", true},
		{"cjk folder", "ドキュメント", 10, "▸ ", "/", "▸ ドキ.../", true},
		{"too narrow keeps plain cut", "Dev", 4, "▸ ", "/", "▸...", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateWithPrefixSuffix(tt.text, tt.maxWidth, tt.prefix, tt.suffix, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateWithPrefixSuffix(%q, %d, %q, %q) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, tt.prefix, tt.suffix, got, truncated, tt.want, tt.truncated)
			}
		})
	}
}

func TestTruncateANSIAware(t *testing.T) {
	cfg := DefaultConfig().Text
	highlighted := "\x1b[1mGit\x1b[0mHub Enterprise Docs"

	t.Run("fits unchanged", func(t *testing.T) {
		if got := TruncateANSIAware(highlighted, 40, cfg); got != highlighted {
			t.Errorf("expected input returned as is, got %q", got)
		}
	})

	t.Run("truncated ends with reset", func(t *testing.T) {
		got := TruncateANSIAware(highlighted, 10, cfg)
		if !strings.HasSuffix(got, resetCode) {
			t.Errorf("expected reset suffix, got %q", got)
		}
		if plain := StripANSI(got); plain != "GitHub ..." {
			t.Errorf("expected visible text %q, got %q", "GitHub ...", plain)
		}
	})

	t.Run("escape codes kept intact", func(t *testing.T) {
		got := TruncateANSIAware(highlighted, 6, cfg)
		if !strings.HasPrefix(got, "\x1b[1mGit\x1b[0m") {
			t.Errorf("expected highlight sequence preserved, got %q", got)
		}
	})

	t.Run("wide runes", func(t *testing.T) {
		got := TruncateANSIAware("\x1b[1m日本\x1b[0m語のドキュメント", 7, cfg)
		if w := VisibleWidth(got); w > 7 {
			t.Errorf("expected at most 7 cells, got %d (%q)", w, got)
		}
		if plain := StripANSI(got); plain != "日本..." {
			t.Errorf("expected %q, got %q", "日本...", plain)
		}
	})

	t.Run("zero width", func(t *testing.T) {
		if got := TruncateANSIAware(highlighted, 0, cfg); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}
