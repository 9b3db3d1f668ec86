package ports

import "go.trai.ch/mia/internal/core/domain"

// LockStore defines the interface for persisting and loading lock manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockStore interface {
	// Write serializes the manifest to path, replacing any previous content.
	// Failures are reported as domain.ErrLockWriteFailed and leave an existing file untouched.
	Write(path string, manifest *domain.LockManifest) error

	// Read loads the manifest stored at path.
	Read(path string) (*domain.LockManifest, error)
}
