package ports

import "go.trai.ch/depfix/internal/core/domain"

// Cleaner removes dependency caches and lockfiles.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Cleaner interface {
	// Clean removes the cache directory and lockfile of every dir below root.
	// Missing targets are skipped. It returns the removed paths and a joined
	// error of every removal that failed.
	Clean(root string, dirs []string) ([]string, error)
}

// ManifestPatcher applies version pins to a manifest file.
type ManifestPatcher interface {
	// Patch rewrites the manifest at path with the given pins applied.
	// It reports whether the file content changed.
	Patch(path string, pins []domain.Pin) (bool, error)
}

// NpmrcWriter writes package manager configuration files.
type NpmrcWriter interface {
	// Write overwrites every path with content.
	Write(paths []string, content string) error
}
