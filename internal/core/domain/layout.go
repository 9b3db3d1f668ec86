package domain

import "path/filepath"

const (
	// DefinitionsDirName is the name of the directory holding all definitions of a workspace.
	DefinitionsDirName = "definitions"

	// ResourcesDirName is the name of the directory holding cached repository indexes.
	ResourcesDirName = "resources"

	// UserAppsDirName is the name of the per-definition directory downloaded artifacts go to.
	UserAppsDirName = "user-apps"

	// SettingsFileName is the name of the definition settings file.
	SettingsFileName = "settings.yaml"

	// LockFileName is the name of the definition apps lock file.
	LockFileName = "apps_lock.yaml"

	// IndexFileName is the name of the index document published by a repository.
	IndexFileName = "index.xml"

	// IndexCacheSuffix is appended to an apps key to form the cached index file name.
	IndexCacheSuffix = ".index.xml"

	// DirPerm is the default permission for directories (rwxr-xr-x).
	DirPerm = 0o755

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefinitionPath returns the directory of the named definition inside the workspace.
func DefinitionPath(workspace, name string) string {
	return filepath.Join(workspace, DefinitionsDirName, name)
}

// ResourcesPath returns the directory cached repository indexes live in.
func ResourcesPath(workspace string) string {
	return filepath.Join(workspace, ResourcesDirName)
}

// IndexCachePath returns the cache location of a repository index.
// It joins the resources directory and <appsKey>.index.xml.
func IndexCachePath(resourcesDir, appsKey string) string {
	return filepath.Join(resourcesDir, appsKey+IndexCacheSuffix)
}
