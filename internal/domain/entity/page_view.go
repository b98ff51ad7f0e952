package entity

// ViewKind selects which content tree a pane renders.
type ViewKind string

const (
	// ViewHome is the toolbar, tab bar and home content.
	ViewHome ViewKind = "home"
	// ViewBlank is the chrome with an empty content area, for a tab that
	// has no content tree.
	ViewBlank ViewKind = "blank"
	// ViewDisconnected is the placeholder shown when connectivity is off.
	ViewDisconnected ViewKind = "disconnected"
)

// PageView is the render tree of a browser pane. Exactly the parts that
// apply to Kind are non-nil.
type PageView struct {
	Kind        ViewKind
	Toolbar     *Toolbar
	TabBar      *TabBar
	Home        *HomeContent
	Placeholder *DisconnectedPlaceholder
}

// Toolbar is the navigation row with the address field.
type Toolbar struct {
	Address  string
	Spinning bool
	Leading  []CommandKind // back, forward, refresh, home
	Trailing []CommandKind // star
}

// TabBar is the inert tab strip.
type TabBar struct {
	Tabs   []Tab
	Active TabID
	AddTab CommandKind
}

// HomeContent is the static home tab body.
type HomeContent struct {
	Collections []LinkCollection
	Card        PortfolioCard
}

// PortfolioCard is the static text card below the bookmark grids.
type PortfolioCard struct {
	Title       string
	Paragraphs  []string
	ActionLabel string
	Action      CommandKind
}

// DisconnectedPlaceholder replaces the whole pane while offline.
type DisconnectedPlaceholder struct {
	Heading    string
	Message    string
	RetryLabel string
	Retry      CommandKind
	Loading    bool
}

// DefaultPortfolioCard returns the home card copy.
func DefaultPortfolioCard() PortfolioCard {
	return PortfolioCard{
		Title: "Daniel Prior - Portfolio",
		Paragraphs: []string{
			"Welcome to my portfolio website! I'm a frontend developer specializing in creating beautiful, " +
				"responsive, and user-friendly web applications.",
			"With expertise in React, Next.js, TypeScript, and modern CSS frameworks, I build performant web " +
				"experiences that users love.",
		},
		ActionLabel: "View Projects",
		Action:      CommandViewProjects,
	}
}
