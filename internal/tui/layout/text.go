package layout

import (
	"github.com/charmbracelet/x/ansi"
)

const resetCode = "\x1b[0m"

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleWidth returns the number of terminal cells s occupies, ignoring
// escape codes. Wide runes such as CJK count as two.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText cuts text to at most maxWidth cells, ending in the ellipsis.
// A wide rune that would straddle the limit is dropped whole.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if maxWidth <= ansi.StringWidth(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateWithPrefixSuffix truncates text while keeping prefix and suffix intact.
// Example: TruncateWithPrefixSuffix("Development", 12, "▸ ", "/", cfg) -> "▸ Develo.../"
func TruncateWithPrefixSuffix(text string, maxWidth int, prefix, suffix string, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	combined := prefix + text + suffix
	if ansi.StringWidth(combined) <= maxWidth {
		return combined, false
	}

	overhead := ansi.StringWidth(prefix) + ansi.StringWidth(suffix)
	if overhead+ansi.StringWidth(cfg.Ellipsis) >= maxWidth {
		return TruncateText(combined, maxWidth, cfg)
	}

	return prefix + ansi.Truncate(text, maxWidth-overhead, cfg.Ellipsis) + suffix, true
}

// TruncateANSIAware truncates styled text to maxWidth visible cells without
// breaking escape sequences. A reset code is appended when truncating so the
// style does not bleed into what follows.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(styledText) <= maxWidth {
		return styledText
	}
	return ansi.Truncate(styledText, maxWidth, cfg.Ellipsis) + resetCode
}
