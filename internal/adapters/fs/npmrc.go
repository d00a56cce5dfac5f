package fs

import (
	"os"

	"go.trai.ch/depfix/internal/core/domain"
	"go.trai.ch/depfix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.NpmrcWriter = (*NpmrcWriter)(nil)

// NpmrcWriter writes package manager configuration files.
type NpmrcWriter struct{}

// NewNpmrcWriter creates a new NpmrcWriter.
func NewNpmrcWriter() *NpmrcWriter {
	return &NpmrcWriter{}
}

// Write overwrites every path with content. It stops at the first failure.
func (w *NpmrcWriter) Write(paths []string, content string) error {
	for _, path := range paths {
		//nolint:gosec // paths are fixed locations below the project root
		if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrNpmrcWriteFailed.Error()), "path", path)
		}
	}
	return nil
}
