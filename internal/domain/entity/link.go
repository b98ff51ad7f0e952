package entity

// LinkEntry is a static bookmark rendered as a clickable tile.
type LinkEntry struct {
	Title string
	URL   string
	Icon  string // asset reference, e.g. "/github.png"
}

// LinkCollection is a named, ordered group of bookmark tiles.
type LinkCollection struct {
	Name    string
	Columns int // grid columns on a wide viewport
	Entries []LinkEntry
}

// Len returns the number of entries in the collection.
func (c LinkCollection) Len() int {
	return len(c.Entries)
}

// At returns the entry at index i and whether it exists.
func (c LinkCollection) At(i int) (LinkEntry, bool) {
	if i < 0 || i >= len(c.Entries) {
		return LinkEntry{}, false
	}
	return c.Entries[i], true
}

// SocialLinks returns the "SNS Links" collection.
// A fresh slice is returned on every call so callers cannot mutate the source.
func SocialLinks() LinkCollection {
	return LinkCollection{
		Name:    "SNS Links",
		Columns: 7,
		Entries: []LinkEntry{
			{Title: "LinkedIn", URL: "https://www.linkedin.com/in/daniel-prior-53a679195/", Icon: "/linkedin.png"},
			{Title: "GitHub", URL: "https://github.com/daprior", Icon: "/github.png"},
			{Title: "YouTube", URL: "https://www.youtube.com/@DanielPrior0", Icon: "/youtube.png"},
			{Title: "Email", URL: "mailto:mail@danielprior.dk", Icon: "/mail.png"},
		},
	}
}

// FrequentlyVisited returns the "Frequently Visited" collection.
func FrequentlyVisited() LinkCollection {
	return LinkCollection{
		Name:    "Frequently Visited",
		Columns: 6,
		Entries: []LinkEntry{
			{Title: "GitHub", URL: "https://github.com", Icon: "/github.png"},
			{Title: "LinkedIn", URL: "https://linkedin.com", Icon: "/linkedin.png"},
			{Title: "YouTube", URL: "https://youtube.com", Icon: "/youtube.png"},
			{Title: "Reddit", URL: "https://reddit.com", Icon: "/reddit.png"},
			{Title: "ChatGPT", URL: "https://chatgpt.com", Icon: "/chatgpt.png"},
			{Title: "Stack Overflow", URL: "https://stackoverflow.com", Icon: "/stackoverflow.png"},
		},
	}
}

// HomeCollections returns the bookmark grids shown on the home tab, in display order.
func HomeCollections() []LinkCollection {
	return []LinkCollection{SocialLinks(), FrequentlyVisited()}
}
