package styles

import "github.com/charmbracelet/bubbles/help"

// NewHelp creates a help view coloured with the theme.
func (t *Theme) NewHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = t.HelpKey
	h.Styles.ShortDesc = t.HelpDesc
	h.Styles.ShortSeparator = t.Subtle
	h.Styles.FullKey = t.HelpKey
	h.Styles.FullDesc = t.HelpDesc
	h.Styles.FullSeparator = t.Subtle
	return h
}
