package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDefinitionName is returned when a definition name does not match ^[a-z][a-z0-9-]+$.
	ErrInvalidDefinitionName = zerr.New("invalid definition name, expected lowercase letters, digits and hyphens starting with a letter")

	// ErrDefinitionNotFound is returned when the definition directory or its settings file does not exist.
	ErrDefinitionNotFound = zerr.New("definition not found")

	// ErrSettingsReadFailed is returned when the definition settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read definition settings")

	// ErrSettingsParseFailed is returned when the definition settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse definition settings")

	// ErrInvalidRepository is returned when a repository descriptor is incomplete or unsafe.
	ErrInvalidRepository = zerr.New("invalid repository descriptor")

	// ErrDuplicateAppsKey is returned when two repositories share the same apps key.
	ErrDuplicateAppsKey = zerr.New("duplicate repository apps key")

	// ErrMissingAppsList is returned when a repository's apps key has no list in the settings.
	ErrMissingAppsList = zerr.New("apps list not found for repository")

	// ErrInvalidVersionCode is returned when an app declaration code is neither an integer nor "latest".
	ErrInvalidVersionCode = zerr.New("invalid version code, expected an integer or \"latest\"")

	// ErrIndexFetchFailed is returned when a repository index cannot be downloaded or cached.
	ErrIndexFetchFailed = zerr.New("failed to fetch repository index")

	// ErrIndexParseFailed is returned when a repository index document cannot be parsed.
	ErrIndexParseFailed = zerr.New("failed to parse repository index")

	// ErrLockWriteFailed is returned when the lock manifest cannot be written.
	ErrLockWriteFailed = zerr.New("could not save the lock file")

	// ErrLockMarshalFailed is returned when the lock manifest cannot be serialized.
	ErrLockMarshalFailed = zerr.New("failed to marshal lock manifest")

	// ErrLockNotFound is returned when no lock manifest exists for a definition.
	ErrLockNotFound = zerr.New("lock file not found, run 'mia definition lock' first")

	// ErrLockReadFailed is returned when the lock manifest cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockParseFailed is returned when the lock manifest cannot be parsed.
	ErrLockParseFailed = zerr.New("failed to parse lock file")

	// ErrArtifactFetchFailed is returned when a resolved artifact cannot be downloaded.
	ErrArtifactFetchFailed = zerr.New("failed to download artifact")

	// ErrDestinationCreateFailed is returned when the download destination cannot be created.
	ErrDestinationCreateFailed = zerr.New("failed to create download destination")

	// ErrLockFailed is returned when building the lock manifest fails.
	ErrLockFailed = zerr.New("lock failed")

	// ErrDownloadFailed is returned when downloading the locked apps fails.
	ErrDownloadFailed = zerr.New("download failed")
)
