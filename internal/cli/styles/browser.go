package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mockbrowse/internal/domain/entity"
)

const (
	tileWidth    = 18
	minCardWidth = 30
	maxCardWidth = 72
)

// RenderToolbar draws the navigation row. address is the already rendered
// address field and refresh replaces the refresh glyph when non-empty.
func (t *Theme) RenderToolbar(bar *entity.Toolbar, address, refresh string, width int) string {
	if bar == nil {
		return ""
	}

	var leading []string
	for _, kind := range bar.Leading {
		glyph := ControlGlyph(kind)
		if kind == entity.CommandRefresh && refresh != "" {
			glyph = refresh
		}
		leading = append(leading, t.Control.Render(glyph))
	}
	var trailing []string
	for _, kind := range bar.Trailing {
		trailing = append(trailing, t.Control.Render(ControlGlyph(kind)))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, leading...)
	right := lipgloss.JoinHorizontal(lipgloss.Center, trailing...)

	addrWidth := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if addrWidth < 10 {
		addrWidth = 10
	}
	field := t.Address.Width(addrWidth).Render(address)

	row := lipgloss.JoinHorizontal(lipgloss.Center, left, " ", field, " ", right)
	if width > 0 {
		return t.Toolbar.Width(width).Render(row)
	}
	return t.Toolbar.Render(row)
}

// RenderCollection draws a bookmark grid. selected is the highlighted entry
// index, or -1. Columns shrink to fit width.
func (t *Theme) RenderCollection(c entity.LinkCollection, selected, width int) string {
	columns := c.Columns
	if fit := width / (tileWidth + 2); width > 0 && fit < columns {
		columns = fit
	}
	if columns < 1 {
		columns = 1
	}

	var rows []string
	var row []string
	for i, entry := range c.Entries {
		style := t.Tile
		if i == selected {
			style = t.TileSelected
		}
		tile := style.Width(tileWidth).Render(LinkGlyph(entry.Icon) + "\n" + entry.Title)
		row = append(row, tile)

		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, t.Section.Render(c.Name), lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderCard draws the portfolio card.
func (t *Theme) RenderCard(card entity.PortfolioCard, width int) string {
	w := width - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}

	body := []string{t.Title.Render(card.Title), ""}
	for _, p := range card.Paragraphs {
		body = append(body, t.Normal.Render(p), "")
	}
	body = append(body, t.Button.Render(card.ActionLabel))

	return t.Card.Width(w).Render(strings.Join(body, "\n"))
}

// RenderPlaceholder draws the offline page. retry is the rendered label of
// the retry control, so the caller can swap in a spinner.
func (t *Theme) RenderPlaceholder(p *entity.DisconnectedPlaceholder, retry string, width, height int) string {
	if p == nil {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		t.ErrorStyle.Render("⚠"),
		"",
		t.Title.Render(p.Heading),
		t.Subtle.Render(p.Message),
		"",
		t.Button.Render(retry),
	)
	block := t.Placeholder.Render(content)

	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

// RenderEmbedded draws a leaf view that only shows a remote URL.
func (t *Theme) RenderEmbedded(view entity.EmbeddedView, width int) string {
	w := width - 4
	if w < minCardWidth {
		w = minCardWidth
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		t.FrameHeader.Render(view.Title),
		t.Highlight.Render(view.URL),
	)
	return t.Frame.Width(w).Render(content)
}
