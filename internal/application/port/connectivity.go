package port

import "context"

// ConnectivitySource reports simulated network availability.
// It is read-only from the browser pane's point of view; something else
// owns writing the flag.
type ConnectivitySource interface {
	// Connected returns the current flag. Implementations resolve a missing
	// value to true and never block for long.
	Connected(ctx context.Context) bool
}
