package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depfix/internal/adapters/logger"
	"go.trai.ch/depfix/internal/adapters/shell"
	"go.trai.ch/depfix/internal/adapters/telemetry"
	"go.trai.ch/depfix/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(executor, log, tracer), nil
		},
	})
}
