package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/mockbrowse/internal/cli/model"
	"github.com/bnema/mockbrowse/internal/cli/styles"
	"github.com/bnema/mockbrowse/internal/infrastructure/config"
	"github.com/bnema/mockbrowse/internal/logging"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the mock browser",
	Long: `Open the mock browser in the terminal.

Connectivity is read from the shared settings database once a second. Theme
changes in the config file apply without a restart.

Keys:
  ←/→ ↑/↓   move between bookmarks and grids
  enter     put the bookmark URL in the address bar
  /         edit the address
  r         refresh (or Try Again while offline)
  ?         all keys`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if _, logErr := a.UseSessionLog(); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: session log disabled: %v\n", logErr)
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(a.Ctx(), "browse"), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	log := logging.FromContext(ctx)

	pane := a.NewBrowserPane()
	pane.Start(ctx)
	defer pane.Stop()

	program := tea.NewProgram(model.NewBrowserModel(ctx, a.Theme, pane), tea.WithAltScreen())

	a.Configs.OnConfigChange(func(cfg *config.Config) {
		log.Info().Bool("dark_mode", cfg.Appearance.DarkMode).Msg("config reloaded")
		program.Send(model.ThemeChangedMsg{Theme: styles.NewTheme(cfg)})
	})
	if watchErr := a.Configs.Watch(); watchErr != nil {
		log.Warn().Err(watchErr).Msg("config hot reload disabled")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, runErr := program.Run(); runErr != nil {
			return fmt.Errorf("browser: %w", runErr)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		pane.Stop()
		return nil
	})

	err = g.Wait()
	log.Info().Str("pane_id", pane.ID()).Msg("browser closed")
	return err
}
