package entity

// TabID identifies a tab in the browser pane's tab bar.
type TabID string

// TabHome is the only tab the pane knows about.
const TabHome TabID = "home"

// Tab is a tab bar entry. Tabs carry no content of their own; the active
// tab id selects which content tree the pane renders.
type Tab struct {
	ID       TabID
	Name     string
	Position int
	Closable bool // shows a close affordance; closing is inert
}

// Title returns the display title for the tab.
func (t Tab) Title() string {
	if t.Name != "" {
		return t.Name
	}
	return "New Tab"
}

// TabList is the closed, ordered set of tabs shown in the tab bar.
type TabList struct {
	Tabs        []Tab
	ActiveTabID TabID
}

// NewHomeTabList returns the fixed tab bar with the home tab active.
func NewHomeTabList() TabList {
	return TabList{
		Tabs:        []Tab{{ID: TabHome, Name: "Home", Position: 0, Closable: true}},
		ActiveTabID: TabHome,
	}
}

// Find returns a tab by ID.
func (tl TabList) Find(id TabID) (Tab, bool) {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return Tab{}, false
}

// Contains reports whether id belongs to the closed set.
func (tl TabList) Contains(id TabID) bool {
	_, ok := tl.Find(id)
	return ok
}

// ActiveTab returns the currently active tab.
func (tl TabList) ActiveTab() (Tab, bool) {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl TabList) Count() int {
	return len(tl.Tabs)
}
