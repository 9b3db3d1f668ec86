package locker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mia/internal/adapters/fdroid"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mia/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mia/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mia/internal/core/ports"
)

// NodeID is the unique identifier for the locker Graft node.
const NodeID graft.ID = "engine.locker"

func init() {
	graft.Register(graft.Node[*Locker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fdroid.FetcherNodeID,
			fdroid.ParserNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Locker, error) {
			fetcher, err := graft.Dep[ports.IndexFetcher](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.IndexParser](ctx)
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

			return New(fetcher, parser, log, tracer), nil
		},
	})
}
