package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mockbrowse/internal/application/usecase"
	"github.com/bnema/mockbrowse/internal/cli/styles"
)

type editorLaunchedMsg struct {
	err error
}

// EditorModel shows the editor leaf view.
type EditorModel struct {
	help   help.Model
	keys   editorKeyMap
	width  int
	status string

	ctx   context.Context
	uc    *usecase.OpenEditorUseCase
	theme *styles.Theme
}

// NewEditorModel creates the editor model.
func NewEditorModel(ctx context.Context, theme *styles.Theme, uc *usecase.OpenEditorUseCase) EditorModel {
	return EditorModel{
		help:  theme.NewHelp(),
		keys:  defaultEditorKeyMap(),
		width: 80,
		ctx:   ctx,
		uc:    uc,
		theme: theme,
	}
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case ThemeChangedMsg:
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.help = msg.Theme.NewHelp()
		}

	case editorLaunchedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = "opened " + m.uc.View().URL
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Launch):
			ctx, uc := m.ctx, m.uc
			return m, func() tea.Msg {
				return editorLaunchedMsg{err: uc.Launch(ctx)}
			}
		}
	}
	return m, nil
}

// View renders the model.
func (m EditorModel) View() string {
	parts := []string{m.theme.RenderEmbedded(m.uc.View(), m.width)}
	if m.status != "" {
		parts = append(parts, m.theme.Subtle.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
