package domain

import (
	"path/filepath"
	"regexp"

	"go.trai.ch/zerr"
)

var validDefinitionNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]+$`)

// ValidateDefinitionName checks that a definition name consists of lowercase letters,
// digits and hyphens and starts with a letter.
func ValidateDefinitionName(name string) error {
	if !validDefinitionNameRegex.MatchString(name) {
		return zerr.With(ErrInvalidDefinitionName, "definition", name)
	}
	return nil
}

// Settings is the part of a definition's settings file the lock pipeline consumes.
type Settings struct {
	// Repositories lists the configured app sources in declaration order.
	Repositories []Repository
	// Apps maps a repository apps key to the apps declared for it.
	Apps map[string][]AppDeclaration
}

// Definition is the build profile a command operates on.
// It carries the resolved paths and parsed settings and is passed explicitly to every component.
type Definition struct {
	Name      string
	Workspace string
	Settings  Settings
}

// Path returns the definition directory.
func (d *Definition) Path() string {
	return DefinitionPath(d.Workspace, d.Name)
}

// SettingsPath returns the path of the definition's settings file.
func (d *Definition) SettingsPath() string {
	return filepath.Join(d.Path(), SettingsFileName)
}

// LockPath returns the path of the definition's apps lock file.
func (d *Definition) LockPath() string {
	return filepath.Join(d.Path(), LockFileName)
}

// UserAppsPath returns the directory downloaded artifacts are stored in.
func (d *Definition) UserAppsPath() string {
	return filepath.Join(d.Path(), UserAppsDirName)
}

// ResourcesPath returns the directory repository indexes are cached in.
func (d *Definition) ResourcesPath() string {
	return ResourcesPath(d.Workspace)
}
