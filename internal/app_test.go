package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := NewDefaultConfig()
	cfg.State.Dir = filepath.Join(dir, "state")
	cfg.Cache.Path = filepath.Join(dir, "cache", "cache.db")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := NewApp(cfg, WithLogger(logger))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func TestNewAppCreatesStateDirs(t *testing.T) {
	app := testApp(t)
	for _, dir := range []string{app.Config.State.Dir, app.Config.State.DraftsDir()} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("missing state dir %s: %v", dir, err)
		}
	}
	if app.Sessions == nil || app.Drafts == nil || app.Client == nil {
		t.Error("components not wired")
	}
}

func TestCacheOpensLazily(t *testing.T) {
	app := testApp(t)
	if _, err := os.Stat(app.Config.Cache.Path); !os.IsNotExist(err) {
		t.Error("cache database must not exist before first use")
	}
	db, err := app.Cache()
	if err != nil {
		t.Fatalf("Cache: %v", err)
	}
	again, err := app.Cache()
	if err != nil {
		t.Fatalf("second Cache: %v", err)
	}
	if db != again {
		t.Error("Cache must reuse the open handle")
	}
	if _, err := os.Stat(app.Config.Cache.Path); err != nil {
		t.Errorf("cache database missing after open: %v", err)
	}
}
