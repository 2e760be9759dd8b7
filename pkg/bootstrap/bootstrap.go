package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/trashhalo/pwaicon/log"
	"github.com/trashhalo/pwaicon/pkg/backend"
	"github.com/trashhalo/pwaicon/pkg/icon"
)

var (
	ErrAcquire     = errors.New("acquire backend")
	ErrNoInstaller = errors.New("no installer configured")
)

// Installer fetches whatever a backend needs to become available.
type Installer interface {
	Install(ctx context.Context, name string) error
}

// InstallerFunc adapts a function to Installer.
type InstallerFunc func(ctx context.Context, name string) error

func (f InstallerFunc) Install(ctx context.Context, name string) error {
	return f(ctx, name)
}

// Acquire returns the named backend. When it is missing or unavailable the
// installer runs once and acquisition is retried; a second miss is final.
func Acquire(ctx context.Context, name string, inst Installer) (icon.Backend, error) {
	b, err := probe(name)
	if err == nil {
		log.Debug().Str("backend", name).Msg("backend present")
		return b, nil
	}

	if inst == nil {
		log.Debug().Str("backend", name).Err(err).Msg("backend unavailable and no installer configured")
		return nil, fmt.Errorf("%w %s: %w (%v)", ErrAcquire, name, ErrNoInstaller, err)
	}
	log.Info().Str("backend", name).Err(err).Msg("backend unavailable, installing")
	if err := inst.Install(ctx, name); err != nil {
		return nil, fmt.Errorf("%w %s: install: %w", ErrAcquire, name, err)
	}

	b, err = probe(name)
	if err != nil {
		return nil, fmt.Errorf("%w %s after install: %w", ErrAcquire, name, err)
	}
	log.Debug().Str("backend", name).Msg("backend installed")
	return b, nil
}

func probe(name string) (icon.Backend, error) {
	b, err := backend.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := backend.Available(b); err != nil {
		return nil, err
	}
	return b, nil
}
