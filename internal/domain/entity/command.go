package entity

import "errors"

// ErrUnsupportedCommand is returned for inputs the pane does not know about,
// as opposed to inert controls it accepts and ignores.
var ErrUnsupportedCommand = errors.New("unsupported command")

// CommandKind names a pane control.
type CommandKind string

const (
	CommandSetAddress CommandKind = "set_address"
	CommandSelectLink CommandKind = "select_link"
	CommandRefresh    CommandKind = "refresh"
	CommandTryAgain   CommandKind = "try_again"

	// Inert controls: rendered, accepted, no effect.
	CommandBack         CommandKind = "back"
	CommandForward      CommandKind = "forward"
	CommandHome         CommandKind = "home"
	CommandStar         CommandKind = "star"
	CommandAddTab       CommandKind = "add_tab"
	CommandCloseTab     CommandKind = "close_tab"
	CommandViewProjects CommandKind = "view_projects"
)

var inertKinds = map[CommandKind]bool{
	CommandBack:         true,
	CommandForward:      true,
	CommandHome:         true,
	CommandStar:         true,
	CommandAddTab:       true,
	CommandCloseTab:     true,
	CommandViewProjects: true,
}

// IsInert reports whether k is a control that is accepted but ignored.
func (k CommandKind) IsInert() bool {
	return inertKinds[k]
}

// Command is an input dispatched to a browser pane.
type Command interface {
	Kind() CommandKind
}

// SetAddress replaces the address text.
type SetAddress struct {
	Text string
}

// Kind implements Command.
func (SetAddress) Kind() CommandKind { return CommandSetAddress }

// SelectLink copies a bookmark URL into the address bar.
type SelectLink struct {
	Entry LinkEntry
}

// Kind implements Command.
func (SelectLink) Kind() CommandKind { return CommandSelectLink }

// Refresh spins the loading indicator.
type Refresh struct{}

// Kind implements Command.
func (Refresh) Kind() CommandKind { return CommandRefresh }

// TryAgain is the disconnected placeholder's retry control. It behaves like
// Refresh and does not re-read connectivity.
type TryAgain struct{}

// Kind implements Command.
func (TryAgain) Kind() CommandKind { return CommandTryAgain }

// Inert is a control the chrome shows but that does nothing.
type Inert struct {
	Control CommandKind
}

// Kind implements Command.
func (c Inert) Kind() CommandKind { return c.Control }

// DispatchOutcome tells callers whether an accepted command changed anything.
type DispatchOutcome int

const (
	OutcomeApplied DispatchOutcome = iota
	OutcomeIgnored
)

func (o DispatchOutcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}
