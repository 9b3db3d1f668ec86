package config

import "go.trai.ch/mia/internal/core/domain"

// repositoriesKey is the top-level settings key listing the repositories.
const repositoriesKey = "repositories"

// SettingsFile represents the parts of a definition settings.yaml the loader reads.
// Each repository's apps live under a top-level key named after its apps_key.
type SettingsFile struct {
	Repositories []RepositoryDTO `yaml:"repositories"`
}

// RepositoryDTO represents a repository entry in the settings file.
type RepositoryDTO struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
	AppsKey string `yaml:"apps_key"`
}

// AppDTO represents an app declaration in the settings file.
type AppDTO struct {
	Name string              `yaml:"name"`
	Code *domain.DesiredCode `yaml:"code"`
}
