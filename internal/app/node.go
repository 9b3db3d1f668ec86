package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mia/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mia/internal/adapters/download"  //nolint:depguard // Wired in app layer
	"go.trai.ch/mia/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/mia/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mia/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/mia/internal/core/ports"
	"go.trai.ch/mia/internal/engine/locker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			locker.NodeID,
			lockfile.NodeID,
			download.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	lk, err := graft.Dep[*locker.Locker](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	downloader, err := graft.Dep[ports.ArtifactDownloader](ctx)
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

	return New(loader, lk, store, downloader, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
