// Package model provides Bubble Tea models for the mockbrowse apps.
package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mockbrowse/internal/application/usecase"
	"github.com/bnema/mockbrowse/internal/cli/styles"
	"github.com/bnema/mockbrowse/internal/domain/entity"
	"github.com/bnema/mockbrowse/internal/logging"
)

// PaneChangedMsg reports that the pane state changed outside Update, for
// example a poll or a finished refresh timer.
type PaneChangedMsg struct{}

// ThemeChangedMsg swaps the theme after a config reload.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

type browserFocus int

const (
	focusGrid browserFocus = iota
	focusAddress
)

// BrowserModel is the Bubble Tea model for the mock browser app.
type BrowserModel struct {
	// UI components
	help    help.Model
	keys    browserKeyMap
	address textinput.Model
	spinner spinner.Model

	// State
	view     entity.PageView
	focus    browserFocus
	group    int // selected collection
	index    int // selected entry within group
	width    int
	height   int
	status   string
	showHelp bool

	// Dependencies
	ctx   context.Context
	pane  *usecase.BrowserPane
	theme *styles.Theme
}

// NewBrowserModel creates the model for a pane. The caller owns the pane
// lifecycle (Start/Stop).
func NewBrowserModel(ctx context.Context, theme *styles.Theme, pane *usecase.BrowserPane) BrowserModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search or enter address"

	m := BrowserModel{
		help:    theme.NewHelp(),
		keys:    defaultBrowserKeyMap(),
		address: ti,
		spinner: styles.NewRefreshSpinner(theme),
		width:   80,
		height:  24,
		ctx:     ctx,
		pane:    pane,
		theme:   theme,
	}
	m.sync()
	return m
}

// Init starts listening for pane changes.
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(waitForPaneChange(m.pane.Changes()), m.spinner.Tick)
}

func waitForPaneChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return PaneChangedMsg{}
	}
}

// Update handles messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case PaneChangedMsg:
		m.sync()
		return m, waitForPaneChange(m.pane.Changes())

	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.help = msg.Theme.NewHelp()
			m.help.Width = m.width
			m.spinner.Style = styles.NewRefreshSpinner(msg.Theme).Style
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.focus == focusAddress {
			return m.handleAddressKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowserModel) handleAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Blur):
		m.focus = focusGrid
		m.address.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.address.Value()
	m.address, cmd = m.address.Update(msg)
	if after := m.address.Value(); after != before {
		m.dispatch(entity.SetAddress{Text: after})
	}
	return m, cmd
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.view.Kind == entity.ViewDisconnected {
			m.dispatch(entity.TryAgain{})
		} else {
			m.dispatch(entity.Refresh{})
		}
		return m, nil
	}

	// Offline, the placeholder is the whole page.
	if m.view.Kind == entity.ViewDisconnected {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Address):
		m.focus = focusAddress
		m.address.CursorEnd()
		cmd := m.address.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Left):
		m.moveIndex(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveIndex(1)
	case key.Matches(msg, m.keys.Up):
		m.moveGroup(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveGroup(1)
	case key.Matches(msg, m.keys.Open):
		if entry, ok := m.selectedEntry(); ok {
			m.dispatch(entity.SelectLink{Entry: entry})
		}
	case key.Matches(msg, m.keys.Back):
		m.dispatch(entity.Inert{Control: entity.CommandBack})
	case key.Matches(msg, m.keys.Forward):
		m.dispatch(entity.Inert{Control: entity.CommandForward})
	case key.Matches(msg, m.keys.Home):
		m.dispatch(entity.Inert{Control: entity.CommandHome})
	case key.Matches(msg, m.keys.Star):
		m.dispatch(entity.Inert{Control: entity.CommandStar})
	case key.Matches(msg, m.keys.AddTab):
		m.dispatch(entity.Inert{Control: entity.CommandAddTab})
	case key.Matches(msg, m.keys.CloseTab):
		m.dispatch(entity.Inert{Control: entity.CommandCloseTab})
	case key.Matches(msg, m.keys.Projects):
		m.dispatch(entity.Inert{Control: entity.CommandViewProjects})
	}
	return m, nil
}

// dispatch sends a command to the pane and re-renders right away so the
// model never lags behind its own input.
func (m *BrowserModel) dispatch(cmd entity.Command) {
	outcome, err := m.pane.Dispatch(m.ctx, cmd)
	switch {
	case errors.Is(err, entity.ErrUnsupportedCommand):
		logging.FromContext(m.ctx).Warn().Err(err).Msg("command rejected")
		m.status = err.Error()
	case outcome == entity.OutcomeIgnored:
		m.status = fmt.Sprintf("%s is not available in this preview", cmd.Kind())
	default:
		m.status = ""
	}
	m.sync()
}

func (m *BrowserModel) sync() {
	m.view = m.pane.Render()
	// The address bar is not drawn offline, so it cannot keep focus.
	if m.view.Kind == entity.ViewDisconnected && m.focus == focusAddress {
		m.focus = focusGrid
		m.address.Blur()
	}
	if m.view.Toolbar != nil && m.address.Value() != m.view.Toolbar.Address {
		m.address.SetValue(m.view.Toolbar.Address)
	}
}

func (m *BrowserModel) collections() []entity.LinkCollection {
	if m.view.Home == nil {
		return nil
	}
	return m.view.Home.Collections
}

func (m *BrowserModel) selectedEntry() (entity.LinkEntry, bool) {
	colls := m.collections()
	if m.group < 0 || m.group >= len(colls) {
		return entity.LinkEntry{}, false
	}
	return colls[m.group].At(m.index)
}

func (m *BrowserModel) moveIndex(delta int) {
	colls := m.collections()
	if len(colls) == 0 {
		return
	}
	n := colls[m.group].Len()
	if n == 0 {
		return
	}
	m.index = (m.index + delta + n) % n
}

func (m *BrowserModel) moveGroup(delta int) {
	colls := m.collections()
	if len(colls) == 0 {
		return
	}
	m.group = (m.group + delta + len(colls)) % len(colls)
	if n := colls[m.group].Len(); m.index >= n {
		m.index = n - 1
	}
}

// View renders the model.
func (m BrowserModel) View() string {
	t := m.theme

	if m.view.Kind == entity.ViewDisconnected {
		p := m.view.Placeholder
		retry := p.RetryLabel
		if p.Loading {
			retry = m.spinner.View() + " " + retry
		}
		footer := m.renderFooter()
		page := t.RenderPlaceholder(p, retry, m.width, m.height-lipgloss.Height(footer))
		return lipgloss.JoinVertical(lipgloss.Left, page, footer)
	}

	address := m.view.Toolbar.Address
	if m.focus == focusAddress {
		address = m.address.View()
	}
	refresh := ""
	if m.view.Toolbar.Spinning {
		refresh = m.spinner.View()
	}

	sections := []string{
		t.RenderToolbar(m.view.Toolbar, address, refresh, m.width),
		t.RenderTabBar(m.view.TabBar, m.width),
	}

	if m.view.Home != nil {
		for i, coll := range m.view.Home.Collections {
			selected := -1
			if m.focus == focusGrid && i == m.group {
				selected = m.index
			}
			sections = append(sections, t.RenderCollection(coll, selected, m.width))
		}
		sections = append(sections, t.RenderCard(m.view.Home.Card, m.width))
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowserModel) renderFooter() string {
	lines := []string{}
	if m.status != "" {
		lines = append(lines, m.theme.Subtle.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
