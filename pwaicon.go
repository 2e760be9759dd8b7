// Package pwaicon renders the PWA icon set: two concentric circles on a flat
// green background, one PNG per configured size.
package pwaicon

import (
	"context"
	"fmt"

	"github.com/trashhalo/pwaicon/lib"
	"github.com/trashhalo/pwaicon/log"
	"github.com/trashhalo/pwaicon/pkg/bootstrap"
	"github.com/trashhalo/pwaicon/pkg/config"
	"github.com/trashhalo/pwaicon/pkg/icon"
)

// Setup acquires the configured backend, installing it first if needed.
func Setup(ctx context.Context, cfg config.Config) (*icon.Renderer, error) {
	var inst bootstrap.Installer
	if len(cfg.InstallCommand) > 0 {
		inst = bootstrap.CommandInstaller{Command: cfg.InstallCommand}
	}
	b, err := bootstrap.Acquire(ctx, cfg.Backend, inst)
	if err != nil {
		return nil, err
	}
	return icon.NewRenderer(b), nil
}

// Generate writes one icon per configured size and returns the paths in
// size order. Sizes are rendered one after another; the first failure stops
// the run.
func Generate(ctx context.Context, cfg config.Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r, err := Setup(ctx, cfg)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := cfg.Path(size)
		if err := r.Render(size, path); err != nil {
			return paths, fmt.Errorf("render %dx%d: %w", size, size, err)
		}
		paths = append(paths, path)
	}
	log.Info().Strs("paths", paths).Str("backend", r.Backend().Name()).Msg("icons generated")
	return paths, nil
}

// DryRun renders every size in memory for preview without writing files.
func DryRun(ctx context.Context, cfg config.Config) ([]lib.Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r, err := Setup(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sources := make([]lib.Source, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		img, err := r.Draw(size)
		if err != nil {
			return nil, fmt.Errorf("render %dx%d: %w", size, size, err)
		}
		sources = append(sources, lib.StaticImage{Label: cfg.FileName(size), Img: img})
	}
	return sources, nil
}
