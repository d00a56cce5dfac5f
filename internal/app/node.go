package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depfix/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/depfix/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/depfix/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/depfix/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/depfix/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/depfix/internal/core/ports"
	"go.trai.ch/depfix/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.CleanerNodeID,
			manifest.NodeID,
			fs.NpmrcNodeID,
			runner.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	cleaner, err := graft.Dep[ports.Cleaner](ctx)
	if err != nil {
		return nil, err
	}

	patcher, err := graft.Dep[ports.ManifestPatcher](ctx)
	if err != nil {
		return nil, err
	}

	npmrc, err := graft.Dep[ports.NpmrcWriter](ctx)
	if err != nil {
		return nil, err
	}

	r, err := graft.Dep[*runner.Runner](ctx)
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

	return New(loader, cleaner, patcher, npmrc, r, log, tracer), nil
}
