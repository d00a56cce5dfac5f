// Package config provides the configuration loader for depfix.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/depfix/internal/core/domain"
	"go.trai.ch/depfix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads depfix.yaml below root and overlays it on the defaults.
func (l *Loader) Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	path := domain.ConfigPath(root)

	//nolint:gosec // path is the fixed config location below the project root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := decode(data)
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.PackageManager != "" {
		cfg.PackageManager = file.PackageManager
	}

	policy, err := domain.ParseCleanupPolicy(file.CleanupPolicy)
	if err != nil {
		return cfg, zerr.With(err, "path", path)
	}
	cfg.CleanupPolicy = policy

	if file.Parallel != nil {
		cfg.Parallel = *file.Parallel
	}

	l.Logger.Info("Using " + domain.ConfigFileName)
	return cfg, nil
}

func decode(data []byte) (File, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		// An empty document is not an error.
		if errors.Is(err, io.EOF) {
			return file, nil
		}
		return file, err
	}

	return file, nil
}
