package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SurajChaurasia84/TaskManager/internal/kv"
)

// ErrEmptyName is returned when onboarding is submitted without a name.
var ErrEmptyName = errors.New("name is empty")

// AppState holds the process-wide onboarding state: loaded once at
// startup, set once at onboarding, read-only thereafter. It is passed
// explicitly to the layers that need it; there is no ambient global.
type AppState struct {
	kv        kv.Store
	opTimeout time.Duration

	Username    string
	HasLaunched bool
}

// LoadState reads the onboarding keys from persistence.
func LoadState(ctx context.Context, kvStore kv.Store) (*AppState, error) {
	a := &AppState{kv: kvStore, opTimeout: DefaultOpTimeout}

	opCtx, cancel := context.WithTimeout(ctx, a.opTimeout)
	defer cancel()

	if v, ok, err := kvStore.Get(opCtx, kv.KeyHasLaunched); err != nil {
		return nil, err
	} else if ok {
		a.HasLaunched = v == "true"
	}

	if v, ok, err := kvStore.Get(opCtx, kv.KeyUsername); err != nil {
		return nil, err
	} else if ok {
		a.Username = v
	}

	return a, nil
}

// CompleteOnboarding persists the trimmed display name and sets the
// launched flag permanently. There is no path to re-trigger onboarding
// once set.
func (a *AppState) CompleteOnboarding(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	opCtx, cancel := context.WithTimeout(ctx, a.opTimeout)
	defer cancel()

	if err := a.kv.Set(opCtx, kv.KeyUsername, name); err != nil {
		return err
	}
	if err := a.kv.Set(opCtx, kv.KeyHasLaunched, "true"); err != nil {
		return err
	}

	a.Username = name
	a.HasLaunched = true
	return nil
}
