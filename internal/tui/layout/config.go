package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + breadcrumb (1) + pane borders (2) + status bar (3) = 7
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// ListWidthPercent is the share of the usable width given to the list pane.
	// The detail pane gets the rest.
	ListWidthPercent int

	// WidthOffset is subtracted from the terminal width before splitting.
	// Accounts for app padding and the borders of both panes.
	WidthOffset int

	// MinWidth is the minimum width of either pane.
	MinWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	TitleCharLimit    int
	URLCharLimit      int
	CategoryCharLimit int
	SearchCharLimit   int

	// Width is the display width of every input.
	Width int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:  7,
			MinHeight:        5,
			ListWidthPercent: 55,
			WidthOffset:      8,
			MinWidth:         20,
			ContentPadding:   4,
		},
		Modal: ModalConfig{
			WidthPercent: 40,
			MinWidth:     50,
			MaxWidth:     80,
		},
		Input: InputConfig{
			TitleCharLimit:    200,
			URLCharLimit:      2048,
			CategoryCharLimit: 50,
			SearchCharLimit:   100,
			Width:             40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
