package fdroid

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mia/internal/core/ports"
)

const (
	// FetcherNodeID is the unique identifier for the index fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.index_fetcher"
	// ParserNodeID is the unique identifier for the index parser Graft node.
	ParserNodeID graft.ID = "adapter.index_parser"
)

func init() {
	graft.Register(graft.Node[ports.IndexFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexFetcher, error) {
			return NewFetcher(), nil
		},
	})

	graft.Register(graft.Node[ports.IndexParser]{
		ID:        ParserNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexParser, error) {
			return NewParser(), nil
		},
	})
}
