package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mockbrowse/internal/domain/entity"
)

// RenderTabBar draws the tab strip. Close and add affordances are drawn
// but do nothing.
func (t *Theme) RenderTabBar(bar *entity.TabBar, width int) string {
	if bar == nil {
		return ""
	}

	cells := make([]string, 0, len(bar.Tabs)+1)
	for _, tab := range bar.Tabs {
		label := tab.Title()
		if tab.Closable {
			label += " " + ControlGlyph(entity.CommandCloseTab)
		}

		style := t.InactiveTab
		if tab.ID == bar.Active {
			style = t.ActiveTab
		}
		cells = append(cells, style.Render(label))
	}
	cells = append(cells, t.Control.Render(ControlGlyph(bar.AddTab)))

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if width > 0 {
		return t.TabBar.Width(width).Render(row)
	}
	return t.TabBar.Render(row)
}
