// Package desktop provides desktop environment integration for Linux (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/mockbrowse/internal/application/port"
	"github.com/bnema/mockbrowse/internal/logging"
)

// ErrNoOpener is returned when neither xdg-open nor $BROWSER is available.
var ErrNoOpener = errors.New("no URL opener found (install xdg-utils or set $BROWSER)")

// Opener implements port.URLOpener with xdg-open, falling back to $BROWSER.
type Opener struct {
	command string
}

var _ port.URLOpener = (*Opener)(nil)

// NewOpener detects the URL handler. The returned opener reports
// ErrNoOpener on use if nothing was found.
func NewOpener() *Opener {
	if path, err := exec.LookPath("xdg-open"); err == nil {
		return &Opener{command: path}
	}
	if browser := strings.TrimSpace(os.Getenv("BROWSER")); browser != "" {
		if path, err := exec.LookPath(browser); err == nil {
			return &Opener{command: path}
		}
	}
	return &Opener{}
}

// NewOpenerWithCommand uses a fixed handler binary.
func NewOpenerWithCommand(command string) *Opener {
	return &Opener{command: command}
}

// Available reports whether a handler was found.
func (o *Opener) Available() bool {
	return o.command != ""
}

// Open starts the handler for url and waits for it to exit. xdg-open
// returns as soon as the real application is launched.
func (o *Opener) Open(ctx context.Context, url string) error {
	if o.command == "" {
		return ErrNoOpener
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("command", o.command).Str("url", url).Msg("opening url")

	out, err := exec.CommandContext(ctx, o.command, url).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", o.command, err, msg)
		}
		return fmt.Errorf("%s: %w", o.command, err)
	}
	return nil
}
