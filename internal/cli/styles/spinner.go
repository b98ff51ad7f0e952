package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewRefreshSpinner creates the spinner drawn in place of the refresh
// control while a pane is loading.
func NewRefreshSpinner(theme *Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent).Background(theme.Surface)
	return s
}
