package ports

import (
	"context"

	"go.trai.ch/mia/internal/core/domain"
)

// ArtifactDownloader fetches the artifacts referenced by a lock manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type ArtifactDownloader interface {
	// Download stores every record of the manifest as destDir/<package_name>, creating destDir
	// if needed. With parallelism <= 1 downloads run one after another and the first failure
	// aborts; otherwise up to parallelism downloads run at once and all failures are joined.
	Download(ctx context.Context, manifest *domain.LockManifest, destDir string, parallelism int) error
}
