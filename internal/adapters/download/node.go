package download

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mia/internal/adapters/logger"
	"go.trai.ch/mia/internal/adapters/telemetry"
	"go.trai.ch/mia/internal/core/ports"
)

// NodeID is the unique identifier for the artifact downloader Graft node.
const NodeID graft.ID = "adapter.artifact_downloader"

func init() {
	graft.Register(graft.Node[ports.ArtifactDownloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.ArtifactDownloader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewDownloader(log, tracer), nil
		},
	})
}
