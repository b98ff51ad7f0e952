// Package styles provides the lipgloss look of the mockbrowse apps.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mockbrowse/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from the active palette.
type Theme struct {
	Dark bool

	// Base colors (from config.ColorPalette)
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Danger         lipgloss.Color

	// Text styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	// Browser chrome
	Toolbar        lipgloss.Style
	Control        lipgloss.Style
	Address        lipgloss.Style
	AddressFocused lipgloss.Style
	ActiveTab      lipgloss.Style
	InactiveTab    lipgloss.Style
	TabBar         lipgloss.Style

	// Home content
	Section      lipgloss.Style
	Tile         lipgloss.Style
	TileSelected lipgloss.Style
	Card         lipgloss.Style
	Button       lipgloss.Style

	// Offline placeholder
	Placeholder lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Frame       lipgloss.Style
	FrameHeader lipgloss.Style
}

// NewTheme creates a Theme from config. The dark flag picks the palette.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewThemeFromPalette(cfg.Appearance.ActivePalette(), cfg.Appearance.DarkMode)
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette, dark bool) *Theme {
	t := &Theme{
		Dark:           dark,
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Danger:         lipgloss.Color(p.Danger),
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Danger)

	t.Toolbar = lipgloss.NewStyle().
		Background(t.Surface).
		Padding(0, 1)

	t.Control = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 1)

	t.Address = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.AddressFocused = t.Address.
		Foreground(t.Accent)

	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Background).
		Padding(0, 2).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	t.TabBar = lipgloss.NewStyle().
		Background(t.Surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border)

	t.Section = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true).
		MarginTop(1)

	t.Tile = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Align(lipgloss.Center).
		Padding(0, 1)

	t.TileSelected = t.Tile.
		Foreground(t.Accent).
		BorderForeground(t.Accent).
		Bold(true)

	t.Card = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		MarginTop(1)

	t.Button = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(t.Text).
		Align(lipgloss.Center).
		Padding(2, 4)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Frame = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.FrameHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)
}
