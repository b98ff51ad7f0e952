// Package cli wires mockbrowse dependencies for the cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/mockbrowse/internal/application/usecase"
	"github.com/bnema/mockbrowse/internal/cli/styles"
	"github.com/bnema/mockbrowse/internal/domain/build"
	"github.com/bnema/mockbrowse/internal/domain/repository"
	"github.com/bnema/mockbrowse/internal/infrastructure/config"
	"github.com/bnema/mockbrowse/internal/infrastructure/connectivity"
	"github.com/bnema/mockbrowse/internal/infrastructure/desktop"
	"github.com/bnema/mockbrowse/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/mockbrowse/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Configs   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db       *sqlite.LazyDB
	Settings repository.SettingRepository

	// Use cases
	ConnectivityUC *usecase.ManageConnectivityUseCase
	EditorUC       *usecase.OpenEditorUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds dependencies. The database is only
// opened by commands that read or write settings.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := stderrLogger(cfg)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	settings := sqlite.NewSettingRepository(db)

	return &App{
		Config:         cfg,
		Configs:        mgr,
		Theme:          styles.NewTheme(cfg),
		db:             db,
		Settings:       settings,
		ConnectivityUC: usecase.NewManageConnectivityUseCase(settings),
		EditorUC:       usecase.NewOpenEditorUseCase(cfg.Editor.URL, desktop.NewOpener()),
		ctx:            ctx,
	}, nil
}

// stderrLogger stays at warn unless MOCKBROWSE_LOG_LEVEL asks for more, so
// command output is not interleaved with info logs.
func stderrLogger(cfg *config.Config) zerolog.Logger {
	lc := logging.DefaultConfig()
	lc.Format = cfg.Logging.Format
	lc.TimeFormat = "15:04:05"
	if env := os.Getenv("MOCKBROWSE_LOG_LEVEL"); env != "" {
		lc.Level = logging.ParseLevel(env, lc.Level)
	}
	return logging.New(lc)
}

// UseSessionLog redirects logging to a new session file under the
// configured log directory. Used by full-screen apps, where stderr output
// would corrupt the display.
func (a *App) UseSessionLog() (string, error) {
	sessionID := logging.GenerateSessionID()
	file, err := logging.OpenSessionLog(a.Config.Logging.LogDir, sessionID, a.Config.Logging.KeepSessions)
	if err != nil {
		return "", err
	}

	logger := logging.NewWithWriter(logging.Config{
		Level:      logging.ParseLevel(a.Config.Logging.Level, zerolog.InfoLevel),
		Format:     a.Config.Logging.Format,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}, file)

	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = func() { _ = file.Close() }
	a.ctx = logging.WithSessionID(logging.WithContext(context.Background(), logger), sessionID)
	return file.Name(), nil
}

// NewBrowserPane creates an unmounted pane backed by the settings database.
func (a *App) NewBrowserPane() *usecase.BrowserPane {
	return usecase.NewBrowserPane(
		connectivity.NewSettingSource(a.Settings),
		usecase.BrowserPaneOptions{HomeURL: a.Config.Browser.HomeURL},
	)
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.db.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
