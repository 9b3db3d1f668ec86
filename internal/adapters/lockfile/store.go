// Package lockfile persists lock manifests as apps_lock.yaml.
package lockfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Store implements ports.LockStore using YAML files.
type Store struct {
	logger ports.Logger
	mu     sync.Mutex
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Write serializes the manifest and atomically replaces the file at path.
// An existing file with identical content is left as is.
func (s *Store) Write(path string, manifest *domain.LockManifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Marshal(manifest)
	if err != nil {
		return errors.Join(domain.ErrLockWriteFailed, err)
	}

	path = filepath.Clean(path)
	//nolint:gosec // Path is built from the workspace and a validated definition name
	if existing, err := os.ReadFile(path); err == nil && xxhash.Sum64(existing) == xxhash.Sum64(data) {
		s.logger.Info("lock file unchanged: " + path)
		return nil
	}

	if err := atomicWriteFile(path, data); err != nil {
		return errors.Join(domain.ErrLockWriteFailed, zerr.With(err, "path", path))
	}
	s.logger.Info("lock file written to " + path)

	return nil
}

// Read loads the manifest stored at path.
func (s *Store) Read(path string) (*domain.LockManifest, error) {
	path = filepath.Clean(path)

	//nolint:gosec // Path is built from the workspace and a validated definition name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrLockNotFound, zerr.With(zerr.New("no such file"), "path", path))
		}
		return nil, errors.Join(domain.ErrLockReadFailed, zerr.With(err, "path", path))
	}

	manifest, err := Unmarshal(data)
	if err != nil {
		return nil, errors.Join(domain.ErrLockParseFailed, zerr.With(err, "path", path))
	}

	return manifest, nil
}

// Marshal renders a manifest as YAML with groups and records in manifest order.
func Marshal(manifest *domain.LockManifest) ([]byte, error) {
	groups := orderedmap.New[string, []domain.ResolvedApp]()
	for key, apps := range manifest.Groups() {
		groups.Set(key, apps)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(groups); err != nil {
		return nil, errors.Join(domain.ErrLockMarshalFailed, err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Join(domain.ErrLockMarshalFailed, err)
	}

	return buf.Bytes(), nil
}

// Unmarshal parses YAML produced by Marshal. Empty input yields an empty manifest.
func Unmarshal(data []byte) (*domain.LockManifest, error) {
	manifest := domain.NewLockManifest()
	if len(bytes.TrimSpace(data)) == 0 {
		return manifest, nil
	}

	groups := orderedmap.New[string, []domain.ResolvedApp]()
	if err := yaml.Unmarshal(data, groups); err != nil {
		return nil, err
	}

	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		manifest.Set(pair.Key, pair.Value)
	}

	return manifest, nil
}

// atomicWriteFile writes data to a temporary file next to path and renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create lock file directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary lock file")
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temporary lock file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temporary lock file")
	}
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set lock file permissions")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return zerr.Wrap(err, "failed to replace lock file")
	}

	return nil
}
