package entity

// DefaultEditorURL is the remote code viewer the editor app shows.
const DefaultEditorURL = "https://github1s.com/daprior/danielprior-macos/blob/main/README.md"

// EmbeddedView is a leaf app that only presents a remote URL. It exposes no
// interaction surface to its host.
type EmbeddedView struct {
	Title string
	URL   string
}

// NewEditorView returns the code editor leaf for url, or the default viewer
// when url is empty.
func NewEditorView(url string) EmbeddedView {
	if url == "" {
		url = DefaultEditorURL
	}
	return EmbeddedView{
		Title: "VSCode Project View",
		URL:   url,
	}
}
