// Package seed loads portfolio content from a JSON file on disk, so the
// portfolio can be managed as a versioned file as well as through the API.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/mannaz/internal/apperr"
	"github.com/starford/mannaz/internal/models"
	"github.com/starford/mannaz/internal/portfolioservice"
)

// Import creates the initial portfolio from the seed file when no current
// portfolio exists. A missing seed file is not an error; an existing
// portfolio is never overwritten at startup.
func Import(ctx context.Context, svc *portfolioservice.Service, path string, logger *slog.Logger) error {
	in, err := readSeed(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("seed: no seed file", slog.String("path", path))
			return nil
		}
		return err
	}

	if _, err := svc.GetPortfolio(ctx); err == nil {
		logger.Info("seed: portfolio already exists, skipping import")
		return nil
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	p, err := svc.CreatePortfolio(ctx, *in)
	if err != nil {
		return fmt.Errorf("seed: create portfolio: %w", err)
	}
	logger.Info("seed: portfolio imported", slog.String("id", p.ID), slog.String("path", path))
	return nil
}

// Watch starts an fsnotify watcher on the seed file's directory and re-applies
// the file whenever it changes, until ctx is cancelled. Changes replace every
// top-level section of the current portfolio (the file is the full document);
// if no portfolio exists yet, one is created. cb (if non-nil) is called after
// each successful apply.
//
// Editors that write via rename (vim, atomic savers) emit Create/Rename rather
// than Write, so all three are treated as a change and debounced.
func Watch(ctx context.Context, svc *portfolioservice.Service, path string, logger *slog.Logger, cb func(event, id string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("seed: watch %s: %w", dir, err)
	}

	logger.Info("seed: watcher started", slog.String("path", path))

	// applyTimer debounces bursts of events from a single save.
	var applyTimer *time.Timer
	var applyCh <-chan time.Time

	scheduleApply := func() {
		if applyTimer == nil {
			applyTimer = time.NewTimer(200 * time.Millisecond)
			applyCh = applyTimer.C
		} else {
			applyTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if applyTimer != nil {
				applyTimer.Stop()
			}
			logger.Info("seed: watcher stopped")
			return nil

		case <-applyCh:
			applySeed(ctx, svc, path, logger, cb)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				scheduleApply()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("seed: watcher error", slog.String("error", watchErr.Error()))
		}
	}
}

// applySeed re-reads the file and replaces the current portfolio content.
func applySeed(ctx context.Context, svc *portfolioservice.Service, path string, logger *slog.Logger, cb func(event, id string)) {
	in, err := readSeed(path)
	if err != nil {
		logger.Warn("seed: reload failed", slog.String("path", path), slog.String("error", err.Error()))
		return
	}

	update := models.PortfolioUpdate{
		Personal:       &in.Personal,
		SocialLinks:    &in.SocialLinks,
		Skills:         &in.Skills,
		Projects:       &in.Projects,
		Experience:     &in.Experience,
		Certifications: &in.Certifications,
		Achievements:   &in.Achievements,
		CodingProfiles: &in.CodingProfiles,
	}

	p, err := svc.UpdatePortfolio(ctx, update)
	if errors.Is(err, apperr.ErrNotFound) {
		p, err = svc.CreatePortfolio(ctx, *in)
		if err == nil {
			logger.Info("seed: portfolio created from file", slog.String("id", p.ID))
			if cb != nil {
				cb("portfolio.created", p.ID)
			}
			return
		}
	}
	if err != nil {
		logger.Warn("seed: apply failed", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	logger.Info("seed: portfolio updated from file", slog.String("id", p.ID))
	if cb != nil {
		cb("portfolio.updated", p.ID)
	}
}

func readSeed(path string) (*models.PortfolioCreate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in models.PortfolioCreate
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("seed: validate %s: %w", path, err)
	}
	return &in, nil
}
