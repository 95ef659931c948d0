package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/cookbook/internal/api"
	"github.com/starford/cookbook/internal/cache"
	"github.com/starford/cookbook/internal/draft"
	"github.com/starford/cookbook/internal/session"
	"github.com/starford/cookbook/internal/storage"
)

// App holds the initialized client components. Commands pick what they need;
// the cache database is opened lazily because most commands never touch it.
type App struct {
	Config   *Config
	Logger   *slog.Logger
	Sessions *session.Store
	Drafts   *draft.FileStore
	Client   *api.Client

	cacheDB *cache.DB
}

// NewApp wires the client from the given configuration.
func NewApp(cfg *Config, opts ...Option) (*App, error) {
	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}

	if app.Logger == nil {
		app.Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
	}
	slog.SetDefault(app.Logger)

	if err := os.MkdirAll(cfg.State.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	stateDir, err := storage.NewDir(cfg.State.Dir)
	if err != nil {
		return nil, fmt.Errorf("init state storage: %w", err)
	}
	app.Sessions = session.NewStore(stateDir)

	draftsDir, err := storage.NewDir(cfg.State.DraftsDir())
	if err != nil {
		return nil, fmt.Errorf("init drafts storage: %w", err)
	}
	app.Drafts = draft.NewFileStore(draftsDir)

	app.Client = api.New(cfg.API.BaseURL, cfg.API.Timeout, app.Sessions)

	app.Logger.Debug("client initialized",
		slog.String("base_url", cfg.API.BaseURL),
		slog.String("state_dir", cfg.State.Dir))

	return app, nil
}

// Cache opens the local feed cache database on first use.
func (a *App) Cache() (*cache.DB, error) {
	if a.cacheDB != nil {
		return a.cacheDB, nil
	}
	if err := os.MkdirAll(filepath.Dir(a.Config.Cache.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := cache.Open(a.Config.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}
	a.cacheDB = db
	return db, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.cacheDB != nil {
		return a.cacheDB.Close()
	}
	return nil
}
