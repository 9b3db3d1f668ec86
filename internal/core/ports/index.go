package ports

import (
	"context"

	"go.trai.ch/mia/internal/core/domain"
)

// IndexFetcher makes a repository index document available locally.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexFetcher interface {
	// EnsureIndex returns the path of the cached index of repo inside cacheDir.
	// A cached copy is reused as is; otherwise the index is downloaded once and cached verbatim.
	EnsureIndex(ctx context.Context, cacheDir string, repo domain.Repository) (string, error)
}

// IndexParser builds a queryable index from a cached index document.
type IndexParser interface {
	// ParseIndex reads and parses the index document at path.
	ParseIndex(path string) (IndexQuerier, error)
}

// IndexQuerier answers version queries against one parsed repository index.
type IndexQuerier interface {
	// ResolveLatest returns the first package listed for the application paired with the
	// application's market version code. ok is false when the application has no package.
	ResolveLatest(applicationID string) (pkg domain.LatestPackage, ok bool)

	// ResolveExact returns the package name of the application's package with the given
	// version code. ok is false when no package carries that code.
	ResolveExact(applicationID string, code int) (packageName string, ok bool)
}
