package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SurajChaurasia84/TaskManager/internal/config"
	"github.com/SurajChaurasia84/TaskManager/internal/kv"
	"github.com/SurajChaurasia84/TaskManager/internal/logging"
	"github.com/SurajChaurasia84/TaskManager/internal/notify"
	"github.com/SurajChaurasia84/TaskManager/internal/store"
	"github.com/SurajChaurasia84/TaskManager/internal/ui"
)

// app bundles the wired application: persistence, store, onboarding
// state, and logger. Close releases the storage handle.
type app struct {
	cfg    *config.Config
	kv     kv.Store
	store  *store.Store
	state  *store.AppState
	logger *log.Logger
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Error("closing store failed", "err", err)
	}
}

// openKV selects the persistence backend from config.
func openKV(cfg *config.Config) (kv.Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		return kv.OpenFile(cfg.FilePath())
	case config.StoreMemory:
		return kv.NewMemory(), nil
	default:
		return kv.OpenSQLite(cfg.SQLitePath())
	}
}

// newApp wires the application and loads the persisted collection.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := logging.New(os.Stderr, cfg)

	kvStore, err := openKV(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store, err)
	}

	var scheduler notify.Scheduler = notify.Noop{}
	if cfg.NotifyCommand != "" {
		scheduler = notify.NewCommandScheduler(cfg.NotifyCommand)
	}

	st := store.New(kvStore, scheduler, logger,
		store.WithOpTimeout(time.Duration(cfg.OpTimeoutSeconds)*time.Second))
	if _, err := st.Load(ctx); err != nil {
		kvStore.Close()
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	state, err := store.LoadState(ctx, kvStore)
	if err != nil {
		kvStore.Close()
		return nil, fmt.Errorf("loading app state: %w", err)
	}

	return &app{cfg: cfg, kv: kvStore, store: st, state: state, logger: logger}, nil
}

// tuiCommand launches the terminal UI.
func tuiCommand(ctx context.Context, cfg *config.Config) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return ui.Run(ctx, a.store, a.state)
}
