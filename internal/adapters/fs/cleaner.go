// Package fs implements the filesystem side of a repair: cache cleanup and config files.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/depfix/internal/core/domain"
	"go.trai.ch/depfix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Cleaner = (*Cleaner)(nil)

// Cleaner removes dependency caches and lockfiles.
type Cleaner struct {
	logger    ports.Logger
	removeAll func(string) error
	remove    func(string) error
}

// NewCleaner creates a new Cleaner.
func NewCleaner(logger ports.Logger) *Cleaner {
	return &Cleaner{
		logger:    logger,
		removeAll: os.RemoveAll,
		remove:    os.Remove,
	}
}

// Clean removes node_modules and package-lock.json from every dir below root.
// Every target is attempted; failures are joined into the returned error.
func (c *Cleaner) Clean(root string, dirs []string) ([]string, error) {
	var removed []string
	var errs error

	for _, dir := range dirs {
		targets := []struct {
			name string
			rm   func(string) error
		}{
			{name: domain.CacheDirName, rm: c.removeAll},
			{name: domain.LockfileName, rm: c.remove},
		}

		for _, target := range targets {
			rel := filepath.Join(dir, target.name)
			path := filepath.Join(root, rel)

			if _, err := os.Lstat(path); err != nil {
				if errors.Is(err, iofs.ErrNotExist) {
					continue
				}
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", rel))
				continue
			}

			c.logger.Info("Removing " + rel)
			if err := target.rm(path); err != nil {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanupFailed.Error()), "path", rel))
				continue
			}
			removed = append(removed, rel)
		}
	}

	return removed, errs
}
