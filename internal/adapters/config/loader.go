// Package config provides the definition settings loader for mia.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// validAppsKeyRegex restricts apps keys to names that are safe as cache file stems.
var validAppsKeyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Loader implements ports.ConfigLoader reading <workspace>/definitions/<name>/settings.yaml.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load validates the definition name, reads its settings and returns the definition.
func (l *Loader) Load(workspace, name string) (*domain.Definition, error) {
	if err := domain.ValidateDefinitionName(name); err != nil {
		return nil, err
	}

	def := &domain.Definition{
		Name:      name,
		Workspace: workspace,
	}

	root, err := readSettings(def.SettingsPath())
	if err != nil {
		return nil, zerr.With(err, "definition", name)
	}

	settings, err := l.decodeSettings(root)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "definition", name), "path", def.SettingsPath())
	}
	def.Settings = settings

	return def, nil
}

// readSettings reads the settings file and returns its top-level mapping node.
func readSettings(path string) (*yaml.Node, error) {
	// #nosec G304 -- path is built from the workspace and a validated definition name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrDefinitionNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(errors.New("expected a mapping at the top level"),
			domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	return doc.Content[0], nil
}

func (l *Loader) decodeSettings(root *yaml.Node) (domain.Settings, error) {
	var file SettingsFile
	if err := root.Decode(&file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
	}

	settings := domain.Settings{
		Repositories: make([]domain.Repository, 0, len(file.Repositories)),
		Apps:         make(map[string][]domain.AppDeclaration, len(file.Repositories)),
	}

	for i, dto := range file.Repositories {
		repo, err := buildRepository(dto)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "repository_index", i)
		}

		if _, exists := settings.Apps[repo.AppsKey]; exists {
			return domain.Settings{}, zerr.With(domain.ErrDuplicateAppsKey, "apps_key", repo.AppsKey)
		}

		apps, err := decodeApps(root, repo.AppsKey)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "repository", repo.Name)
		}
		if len(apps) == 0 {
			l.Logger.Warn(fmt.Sprintf("repository %s declares no apps under %q", repo.Name, repo.AppsKey))
		}

		settings.Repositories = append(settings.Repositories, repo)
		settings.Apps[repo.AppsKey] = apps
	}

	return settings, nil
}

func buildRepository(dto RepositoryDTO) (domain.Repository, error) {
	repo := domain.Repository{
		Name:    strings.TrimSpace(dto.Name),
		BaseURL: strings.TrimRight(strings.TrimSpace(dto.BaseURL), "/"),
		AppsKey: strings.TrimSpace(dto.AppsKey),
	}

	switch {
	case repo.Name == "":
		return domain.Repository{}, zerr.With(domain.ErrInvalidRepository, "missing_field", "name")
	case repo.BaseURL == "":
		return domain.Repository{}, zerr.With(domain.ErrInvalidRepository, "missing_field", "base_url")
	case repo.AppsKey == "":
		return domain.Repository{}, zerr.With(domain.ErrInvalidRepository, "missing_field", "apps_key")
	}

	if !validAppsKeyRegex.MatchString(repo.AppsKey) || repo.AppsKey == repositoriesKey {
		return domain.Repository{}, zerr.With(domain.ErrInvalidRepository, "apps_key", repo.AppsKey)
	}

	parsed, err := url.Parse(repo.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return domain.Repository{}, zerr.With(domain.ErrInvalidRepository, "base_url", repo.BaseURL)
	}

	return repo, nil
}

// decodeApps decodes the app list stored under the top-level key appsKey.
func decodeApps(root *yaml.Node, appsKey string) ([]domain.AppDeclaration, error) {
	node := lookupKey(root, appsKey)
	if node == nil {
		return nil, zerr.With(domain.ErrMissingAppsList, "apps_key", appsKey)
	}

	var dtos []AppDTO
	if err := node.Decode(&dtos); err != nil {
		if errors.Is(err, domain.ErrInvalidVersionCode) {
			return nil, zerr.With(err, "apps_key", appsKey)
		}
		parseErr := zerr.Wrap(err, domain.ErrSettingsParseFailed.Error())
		return nil, zerr.With(zerr.With(parseErr, "apps_key", appsKey), "line", node.Line)
	}

	apps := make([]domain.AppDeclaration, 0, len(dtos))
	for i, dto := range dtos {
		id := strings.TrimSpace(dto.Name)
		if id == "" {
			missingErr := zerr.With(zerr.Wrap(errors.New("app without name"), domain.ErrSettingsParseFailed.Error()), "apps_key", appsKey)
			return nil, zerr.With(missingErr, "app_index", i)
		}
		if dto.Code == nil {
			return nil, zerr.With(zerr.With(domain.ErrInvalidVersionCode, "app", id), "apps_key", appsKey)
		}
		apps = append(apps, domain.AppDeclaration{
			ApplicationID: id,
			Code:          *dto.Code,
		})
	}

	return apps, nil
}

// lookupKey returns the value node of key in a mapping node, or nil.
func lookupKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}
