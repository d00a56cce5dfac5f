package ports

import (
	"context"

	"go.trai.ch/depfix/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation's command in dir and blocks until it exits.
	//
	// The invocation's Env is applied on top of the parent environment.
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, inv domain.Invocation, dir string) error
}
