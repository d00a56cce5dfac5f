package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depfix/internal/adapters/logger"
	"go.trai.ch/depfix/internal/core/ports"
)

const (
	// CleanerNodeID is the unique identifier for the cleaner Graft node.
	CleanerNodeID graft.ID = "adapter.fs.cleaner"
	// NpmrcNodeID is the unique identifier for the .npmrc writer Graft node.
	NpmrcNodeID graft.ID = "adapter.fs.npmrc"
)

func init() {
	graft.Register(graft.Node[ports.Cleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Cleaner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCleaner(log), nil
		},
	})

	graft.Register(graft.Node[ports.NpmrcWriter]{
		ID:        NpmrcNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NpmrcWriter, error) {
			return NewNpmrcWriter(), nil
		},
	})
}
