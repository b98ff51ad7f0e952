package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/bnema/mockbrowse/internal/application/port"
	"github.com/bnema/mockbrowse/internal/domain/entity"
	"github.com/bnema/mockbrowse/internal/logging"
)

// BrowserPaneOptions configures a browser pane.
type BrowserPaneOptions struct {
	// HomeURL is the address shown on mount. Empty uses entity.DefaultHomeURL.
	HomeURL string
	// Clock drives the poll ticker and refresh timers. Nil uses the wall clock.
	Clock clockwork.Clock
}

// BrowserPane is the session state machine behind the mock browser app.
//
// State mutations arrive from user input and from the pane's own timers, so
// they are serialised by mu. Every mutation is followed by a non-blocking
// signal on Changes.
type BrowserPane struct {
	id          string
	homeURL     string
	source      port.ConnectivitySource
	clock       clockwork.Clock
	tabs        entity.TabList
	collections []entity.LinkCollection

	mu        sync.Mutex
	state     entity.PaneState
	resets    map[uint64]clockwork.Timer
	nextReset uint64

	// Poll task, owned by Start/Stop.
	mounted bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	changes chan struct{}
}

// NewBrowserPane creates an unmounted pane reading connectivity from source.
func NewBrowserPane(source port.ConnectivitySource, opts BrowserPaneOptions) *BrowserPane {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &BrowserPane{
		id:          uuid.NewString(),
		homeURL:     opts.HomeURL,
		source:      source,
		clock:       clock,
		tabs:        entity.NewHomeTabList(),
		collections: entity.HomeCollections(),
		state:       entity.NewPaneState(opts.HomeURL),
		resets:      make(map[uint64]clockwork.Timer),
		changes:     make(chan struct{}, 1),
	}
}

// ID returns the pane instance id used in logs.
func (p *BrowserPane) ID() string {
	return p.id
}

// Changes returns a channel that receives a value after state changes.
// Bursts coalesce into a single pending signal.
func (p *BrowserPane) Changes() <-chan struct{} {
	return p.changes
}

// Start mounts the pane: state is reset to mount defaults, connectivity is
// read once before Start returns, then re-read every
// entity.ConnectivityPollInterval until Stop or until ctx is cancelled.
// Starting a mounted pane is a no-op.
func (p *BrowserPane) Start(ctx context.Context) {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		log.Debug().Str("pane_id", p.id).Msg("browser pane already mounted")
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.state = entity.NewPaneState(p.homeURL)
	p.mounted = true
	p.cancel = cancel
	ticker := p.clock.NewTicker(entity.ConnectivityPollInterval)
	p.mu.Unlock()

	p.PollConnectivity(pollCtx)

	p.wg.Add(1)
	go p.pollLoop(pollCtx, ticker)

	log.Debug().Str("pane_id", p.id).Dur("interval", entity.ConnectivityPollInterval).Msg("browser pane mounted")
}

func (p *BrowserPane) pollLoop(ctx context.Context, ticker clockwork.Ticker) {
	defer p.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.PollConnectivity(ctx)
		}
	}
}

// Stop unmounts the pane. It cancels the poll task, waits for it to exit
// and stops refresh timers that have not fired yet. The loading flag is
// cleared since no timer is left to clear it.
func (p *BrowserPane) Stop() {
	p.mu.Lock()
	for id, timer := range p.resets {
		timer.Stop()
		delete(p.resets, id)
	}
	p.state.Loading = false
	if !p.mounted {
		p.mu.Unlock()
		return
	}
	cancel := p.cancel
	p.mounted = false
	p.cancel = nil
	p.mu.Unlock()

	cancel()
	p.wg.Wait()
}

// Mounted reports whether the poll task is running.
func (p *BrowserPane) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mounted
}

// Snapshot returns a copy of the current state.
func (p *BrowserPane) Snapshot() entity.PaneState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetAddress replaces the address text verbatim. Nothing is navigated.
func (p *BrowserPane) SetAddress(ctx context.Context, text string) {
	p.mu.Lock()
	p.state.Address = text
	p.mu.Unlock()

	logging.FromContext(ctx).Trace().Str("pane_id", p.id).Int("len", len(text)).Msg("address edited")
	p.notify()
}

// SelectLink copies a bookmark URL into the address bar. The active tab is
// left alone and nothing is fetched.
func (p *BrowserPane) SelectLink(ctx context.Context, entry entity.LinkEntry) {
	logging.FromContext(ctx).Debug().
		Str("pane_id", p.id).
		Str("title", entry.Title).
		Str("url", entry.URL).
		Msg("bookmark selected")
	p.SetAddress(ctx, entry.URL)
}

// Refresh sets the loading flag and schedules its reset after
// entity.RefreshSpinDuration. Each call gets its own timer; an earlier
// pending reset is neither cancelled nor pushed back, so the flag clears one
// spin duration after the first of several overlapping calls.
func (p *BrowserPane) Refresh(ctx context.Context) {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	p.state.Loading = true
	id := p.nextReset
	p.nextReset++
	p.resets[id] = p.clock.AfterFunc(entity.RefreshSpinDuration, func() {
		p.finishRefresh(id)
		log.Trace().Str("pane_id", p.id).Uint64("timer", id).Msg("refresh spin finished")
	})
	pending := len(p.resets)
	p.mu.Unlock()

	log.Debug().Str("pane_id", p.id).Int("pending_resets", pending).Msg("refresh requested")
	p.notify()
}

func (p *BrowserPane) finishRefresh(id uint64) {
	p.mu.Lock()
	p.state.Loading = false
	delete(p.resets, id)
	p.mu.Unlock()

	p.notify()
}

// PollConnectivity reads the source and stores the result as is.
func (p *BrowserPane) PollConnectivity(ctx context.Context) {
	connected := p.source.Connected(ctx)

	p.mu.Lock()
	previous := p.state.Connected
	p.state.Connected = connected
	p.mu.Unlock()

	if previous != connected {
		logging.FromContext(ctx).Info().
			Str("pane_id", p.id).
			Bool("connected", connected).
			Msg("connectivity changed")
	}
	p.notify()
}

// Render returns the render tree for the current state.
func (p *BrowserPane) Render() entity.PageView {
	return RenderPage(p.Snapshot(), p.tabs, p.collections)
}

// Collections returns the bookmark grids shown on the home tab.
func (p *BrowserPane) Collections() []entity.LinkCollection {
	return p.collections
}

// Dispatch applies a chrome command. Inert controls are accepted and
// reported as ignored; unknown commands return entity.ErrUnsupportedCommand.
func (p *BrowserPane) Dispatch(ctx context.Context, cmd entity.Command) (entity.DispatchOutcome, error) {
	switch c := cmd.(type) {
	case entity.SetAddress:
		p.SetAddress(ctx, c.Text)
	case entity.SelectLink:
		p.SelectLink(ctx, c.Entry)
	case entity.Refresh, entity.TryAgain:
		p.Refresh(ctx)
	case entity.Inert:
		if !c.Control.IsInert() {
			return entity.OutcomeIgnored, fmt.Errorf("%w: %q is not an inert control", entity.ErrUnsupportedCommand, c.Control)
		}
		logging.FromContext(ctx).Debug().Str("pane_id", p.id).Str("control", string(c.Control)).Msg("inert control ignored")
		return entity.OutcomeIgnored, nil
	case nil:
		return entity.OutcomeIgnored, fmt.Errorf("%w: nil command", entity.ErrUnsupportedCommand)
	default:
		return entity.OutcomeIgnored, fmt.Errorf("%w: %q", entity.ErrUnsupportedCommand, cmd.Kind())
	}
	return entity.OutcomeApplied, nil
}

func (p *BrowserPane) notify() {
	select {
	case p.changes <- struct{}{}:
	default:
	}
}
