package styles

import "github.com/bnema/mockbrowse/internal/domain/entity"

var controlGlyphs = map[entity.CommandKind]string{
	entity.CommandBack:     "←",
	entity.CommandForward:  "→",
	entity.CommandRefresh:  "⟳",
	entity.CommandHome:     "⌂",
	entity.CommandStar:     "☆",
	entity.CommandAddTab:   "+",
	entity.CommandCloseTab: "×",
}

// ControlGlyph returns the toolbar glyph for a control.
func ControlGlyph(kind entity.CommandKind) string {
	if g, ok := controlGlyphs[kind]; ok {
		return g
	}
	return "?"
}

// Bookmark icons keyed by the asset reference in entity.LinkEntry.
var linkGlyphs = map[string]string{
	"/linkedin.png":      "in",
	"/github.png":        "gh",
	"/youtube.png":       "▶",
	"/mail.png":          "✉",
	"/reddit.png":        "r/",
	"/chatgpt.png":       "✦",
	"/stackoverflow.png": "so",
}

// LinkGlyph returns a short terminal stand-in for a bookmark icon.
func LinkGlyph(icon string) string {
	if g, ok := linkGlyphs[icon]; ok {
		return g
	}
	return "•"
}
