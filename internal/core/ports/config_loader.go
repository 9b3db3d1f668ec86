package ports

import "go.trai.ch/mia/internal/core/domain"

// ConfigLoader defines the interface for loading a definition and its settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load validates the definition name, reads <workspace>/definitions/<name>/settings.yaml
	// and returns the definition with its repositories and app declarations.
	Load(workspace, name string) (*domain.Definition, error)
}
