package entity

import "time"

// DefaultHomeURL is the address a freshly mounted browser pane shows.
const DefaultHomeURL = "https://danielprior.dev"

const (
	// ConnectivityPollInterval is the fixed cadence at which a mounted pane
	// re-reads the connectivity flag.
	ConnectivityPollInterval = time.Second
	// RefreshSpinDuration is how long a refresh keeps the loading flag set.
	RefreshSpinDuration = time.Second
)

// PaneState is the transient session state of a mounted browser pane.
type PaneState struct {
	Address   string
	Loading   bool
	ActiveTab TabID
	Connected bool
}

// NewPaneState returns mount-time defaults. An empty homeURL falls back to
// DefaultHomeURL so the address is always a defined string.
// Connected starts true until the first poll says otherwise.
func NewPaneState(homeURL string) PaneState {
	if homeURL == "" {
		homeURL = DefaultHomeURL
	}
	return PaneState{
		Address:   homeURL,
		Loading:   false,
		ActiveTab: TabHome,
		Connected: true,
	}
}
