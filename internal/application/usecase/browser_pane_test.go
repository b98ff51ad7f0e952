package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mockbrowse/internal/application/port/mocks"
	"github.com/bnema/mockbrowse/internal/domain/entity"
)

const (
	eventuallyWait = time.Second
	eventuallyTick = 5 * time.Millisecond
)

// flagSource is a ConnectivitySource whose value tests flip from outside.
type flagSource struct {
	connected atomic.Bool
	reads     atomic.Int64
}

func newFlagSource(connected bool) *flagSource {
	s := &flagSource{}
	s.connected.Store(connected)
	return s
}

func (s *flagSource) Connected(context.Context) bool {
	s.reads.Add(1)
	return s.connected.Load()
}

func newTestPane(t *testing.T, source *flagSource) (*BrowserPane, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	pane := NewBrowserPane(source, BrowserPaneOptions{Clock: clock})
	t.Cleanup(pane.Stop)
	return pane, clock
}

func TestBrowserPane_MountDefaults(t *testing.T) {
	pane, _ := newTestPane(t, newFlagSource(true))

	state := pane.Snapshot()
	assert.Equal(t, entity.DefaultHomeURL, state.Address)
	assert.False(t, state.Loading)
	assert.Equal(t, entity.TabHome, state.ActiveTab)
	assert.True(t, state.Connected)
	assert.NotEmpty(t, pane.ID())
	assert.False(t, pane.Mounted())
}

func TestBrowserPane_SetAddress_StoresVerbatim(t *testing.T) {
	pane, _ := newTestPane(t, newFlagSource(true))
	ctx := context.Background()

	inputs := []string{
		"",
		"   padded   ",
		"not a url",
		"https://example.com/a b?q=ä#frag",
		"javascript:alert(1)",
		"\t\n",
	}
	for _, in := range inputs {
		pane.SetAddress(ctx, in)
		assert.Equal(t, in, pane.Snapshot().Address)
	}
}

func TestBrowserPane_SelectLink_LeavesActiveTab(t *testing.T) {
	pane, _ := newTestPane(t, newFlagSource(true))
	ctx := context.Background()

	for _, collection := range pane.Collections() {
		for _, entry := range collection.Entries {
			pane.SelectLink(ctx, entry)
			state := pane.Snapshot()
			assert.Equal(t, entry.URL, state.Address)
			assert.Equal(t, entity.TabHome, state.ActiveTab)
		}
	}
}

func TestBrowserPane_Refresh_ResetsAfterDelay(t *testing.T) {
	pane, clock := newTestPane(t, newFlagSource(true))
	ctx := context.Background()

	pane.Refresh(ctx)
	require.True(t, pane.Snapshot().Loading)

	clock.Advance(entity.RefreshSpinDuration - time.Millisecond)
	assert.True(t, pane.Snapshot().Loading)

	clock.Advance(time.Millisecond)
	assert.Eventually(t, func() bool { return !pane.Snapshot().Loading }, eventuallyWait, eventuallyTick)
}

func TestBrowserPane_Refresh_OverlappingCallsKeepIndependentTimers(t *testing.T) {
	pane, clock := newTestPane(t, newFlagSource(true))
	ctx := context.Background()

	pane.Refresh(ctx)
	clock.Advance(400 * time.Millisecond)
	pane.Refresh(ctx)
	clock.Advance(300 * time.Millisecond)
	pane.Refresh(ctx)
	require.True(t, pane.Snapshot().Loading)

	// The first call's timer is not pushed back by later calls.
	clock.Advance(300 * time.Millisecond)
	require.Eventually(t, func() bool { return !pane.Snapshot().Loading }, eventuallyWait, eventuallyTick)

	// The remaining timers fire later and leave the flag false.
	clock.Advance(entity.RefreshSpinDuration)
	assert.Eventually(t, func() bool {
		pane.mu.Lock()
		defer pane.mu.Unlock()
		return len(pane.resets) == 0
	}, eventuallyWait, eventuallyTick)
	assert.False(t, pane.Snapshot().Loading)
}

func TestBrowserPane_Start_PollsImmediately(t *testing.T) {
	source := mocks.NewMockConnectivitySource(t)
	source.EXPECT().Connected(mock.Anything).Return(false).Once()

	clock := clockwork.NewFakeClock()
	pane := NewBrowserPane(source, BrowserPaneOptions{Clock: clock})

	pane.Start(context.Background())
	assert.True(t, pane.Mounted())
	assert.False(t, pane.Snapshot().Connected)

	pane.Stop()
	assert.False(t, pane.Mounted())
}

func TestBrowserPane_Start_UnsetSourceResolvesConnected(t *testing.T) {
	source := newFlagSource(true)
	pane, clock := newTestPane(t, source)

	pane.Start(context.Background())
	assert.True(t, pane.Snapshot().Connected)

	clock.Advance(entity.ConnectivityPollInterval)
	assert.Eventually(t, func() bool { return source.reads.Load() >= 2 }, eventuallyWait, eventuallyTick)
	assert.True(t, pane.Snapshot().Connected)
}

func TestBrowserPane_Start_IsIdempotent(t *testing.T) {
	source := newFlagSource(true)
	pane, _ := newTestPane(t, source)

	pane.Start(context.Background())
	pane.Start(context.Background())

	assert.Equal(t, int64(1), source.reads.Load())
}

func TestBrowserPane_ExternalDisconnectSwitchesView(t *testing.T) {
	source := newFlagSource(true)
	pane, clock := newTestPane(t, source)

	pane.Start(context.Background())
	require.Equal(t, entity.ViewHome, pane.Render().Kind)

	source.connected.Store(false)
	clock.Advance(entity.ConnectivityPollInterval)

	assert.Eventually(t, func() bool {
		return pane.Render().Kind == entity.ViewDisconnected
	}, eventuallyWait, eventuallyTick)
}

func TestBrowserPane_PollsEveryIntervalWithoutShortCircuit(t *testing.T) {
	source := newFlagSource(true)
	pane, clock := newTestPane(t, source)

	pane.Start(context.Background())
	for i := 2; i <= 4; i++ {
		clock.Advance(entity.ConnectivityPollInterval)
		want := int64(i)
		require.Eventually(t, func() bool { return source.reads.Load() >= want }, eventuallyWait, eventuallyTick)
	}
}

func TestBrowserPane_TryAgainDoesNotRecheckConnectivity(t *testing.T) {
	source := newFlagSource(false)
	pane, clock := newTestPane(t, source)
	ctx := context.Background()

	pane.Start(ctx)
	require.False(t, pane.Snapshot().Connected)
	readsAfterMount := source.reads.Load()

	outcome, err := pane.Dispatch(ctx, entity.TryAgain{})
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeApplied, outcome)

	state := pane.Snapshot()
	assert.True(t, state.Loading)
	assert.False(t, state.Connected)
	assert.Equal(t, readsAfterMount, source.reads.Load(), "try again must not read the source")

	view := pane.Render()
	require.Equal(t, entity.ViewDisconnected, view.Kind)
	assert.True(t, view.Placeholder.Loading)

	clock.Advance(entity.RefreshSpinDuration)
	require.Eventually(t, func() bool { return !pane.Snapshot().Loading }, eventuallyWait, eventuallyTick)
	assert.False(t, pane.Snapshot().Connected)

	// Only an external change picked up by a later poll restores the view.
	source.connected.Store(true)
	clock.Advance(entity.ConnectivityPollInterval)
	assert.Eventually(t, func() bool { return pane.Snapshot().Connected }, eventuallyWait, eventuallyTick)
}

func TestBrowserPane_StopCancelsPendingResets(t *testing.T) {
	source := newFlagSource(true)
	pane, clock := newTestPane(t, source)
	ctx := context.Background()

	pane.Start(ctx)
	pane.Refresh(ctx)
	pane.Stop()

	assert.False(t, pane.Snapshot().Loading)

	readsAtStop := source.reads.Load()
	clock.Advance(5 * entity.ConnectivityPollInterval)

	assert.Never(t, func() bool { return source.reads.Load() != readsAtStop }, 50*time.Millisecond, eventuallyTick)
}

func TestBrowserPane_RemountRestoresDefaults(t *testing.T) {
	source := newFlagSource(true)
	pane, clock := newTestPane(t, source)
	ctx := context.Background()

	pane.Start(ctx)
	pane.SetAddress(ctx, "typed")
	pane.Refresh(ctx)
	pane.Stop()

	pane.Start(ctx)
	state := pane.Snapshot()
	assert.Equal(t, entity.DefaultHomeURL, state.Address)
	assert.False(t, state.Loading)
	assert.Equal(t, entity.TabHome, state.ActiveTab)

	clock.Advance(5 * entity.RefreshSpinDuration)
	assert.Never(t, func() bool { return pane.Snapshot().Loading }, 50*time.Millisecond, eventuallyTick)

	// Refresh still works after a remount.
	pane.Refresh(ctx)
	assert.True(t, pane.Snapshot().Loading)
	clock.Advance(entity.RefreshSpinDuration)
	assert.Eventually(t, func() bool { return !pane.Snapshot().Loading }, eventuallyWait, eventuallyTick)
}

func TestBrowserPane_RemountKeepsConfiguredHome(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pane := NewBrowserPane(newFlagSource(true), BrowserPaneOptions{HomeURL: "https://example.org", Clock: clock})
	t.Cleanup(pane.Stop)
	ctx := context.Background()

	pane.Start(ctx)
	pane.SetAddress(ctx, "elsewhere")
	pane.Stop()
	pane.Start(ctx)

	assert.Equal(t, "https://example.org", pane.Snapshot().Address)
}

func TestBrowserPane_StopWithoutStart(t *testing.T) {
	pane, _ := newTestPane(t, newFlagSource(true))
	assert.NotPanics(t, pane.Stop)
}

func TestBrowserPane_Dispatch(t *testing.T) {
	ctx := context.Background()
	link := entity.FrequentlyVisited().Entries[3]

	tests := []struct {
		name        string
		cmd         entity.Command
		wantOutcome entity.DispatchOutcome
		wantErr     error
		check       func(t *testing.T, s entity.PaneState)
	}{
		{
			name:        "set address",
			cmd:         entity.SetAddress{Text: "about:blank"},
			wantOutcome: entity.OutcomeApplied,
			check: func(t *testing.T, s entity.PaneState) {
				assert.Equal(t, "about:blank", s.Address)
			},
		},
		{
			name:        "select link",
			cmd:         entity.SelectLink{Entry: link},
			wantOutcome: entity.OutcomeApplied,
			check: func(t *testing.T, s entity.PaneState) {
				assert.Equal(t, link.URL, s.Address)
			},
		},
		{
			name:        "refresh",
			cmd:         entity.Refresh{},
			wantOutcome: entity.OutcomeApplied,
			check: func(t *testing.T, s entity.PaneState) {
				assert.True(t, s.Loading)
			},
		},
		{name: "back is inert", cmd: entity.Inert{Control: entity.CommandBack}, wantOutcome: entity.OutcomeIgnored},
		{name: "forward is inert", cmd: entity.Inert{Control: entity.CommandForward}, wantOutcome: entity.OutcomeIgnored},
		{name: "home is inert", cmd: entity.Inert{Control: entity.CommandHome}, wantOutcome: entity.OutcomeIgnored},
		{name: "star is inert", cmd: entity.Inert{Control: entity.CommandStar}, wantOutcome: entity.OutcomeIgnored},
		{name: "add tab is inert", cmd: entity.Inert{Control: entity.CommandAddTab}, wantOutcome: entity.OutcomeIgnored},
		{name: "close tab is inert", cmd: entity.Inert{Control: entity.CommandCloseTab}, wantOutcome: entity.OutcomeIgnored},
		{name: "view projects is inert", cmd: entity.Inert{Control: entity.CommandViewProjects}, wantOutcome: entity.OutcomeIgnored},
		{
			name:        "inert wrapper around an effective control",
			cmd:         entity.Inert{Control: entity.CommandRefresh},
			wantOutcome: entity.OutcomeIgnored,
			wantErr:     entity.ErrUnsupportedCommand,
		},
		{
			name:        "unknown command type",
			cmd:         unknownCommand{},
			wantOutcome: entity.OutcomeIgnored,
			wantErr:     entity.ErrUnsupportedCommand,
		},
		{
			name:        "nil command",
			cmd:         nil,
			wantOutcome: entity.OutcomeIgnored,
			wantErr:     entity.ErrUnsupportedCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pane, _ := newTestPane(t, newFlagSource(true))
			before := pane.Snapshot()

			outcome, err := pane.Dispatch(ctx, tt.cmd)

			assert.Equal(t, tt.wantOutcome, outcome)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
			}

			after := pane.Snapshot()
			assert.Equal(t, entity.TabHome, after.ActiveTab)
			if tt.check != nil {
				tt.check(t, after)
			} else {
				assert.Equal(t, before, after, "ignored commands must not change state")
			}
		})
	}
}

func TestBrowserPane_ChangesSignalCoalesces(t *testing.T) {
	pane, _ := newTestPane(t, newFlagSource(true))
	ctx := context.Background()

	pane.SetAddress(ctx, "a")
	pane.SetAddress(ctx, "b")
	pane.SetAddress(ctx, "c")

	select {
	case <-pane.Changes():
	default:
		t.Fatal("expected a pending change signal")
	}
	select {
	case <-pane.Changes():
		t.Fatal("expected signals to coalesce")
	default:
	}
}

type unknownCommand struct{}

func (unknownCommand) Kind() entity.CommandKind { return entity.CommandKind("teleport") }
