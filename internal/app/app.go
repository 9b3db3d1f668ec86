// Package app implements the application layer for mia.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports"
	"go.trai.ch/mia/internal/engine/locker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	locker       *locker.Locker
	store        ports.LockStore
	downloader   ports.ArtifactDownloader
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lk *locker.Locker,
	store ports.LockStore,
	downloader ports.ArtifactDownloader,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		locker:       lk,
		store:        store,
		downloader:   downloader,
		logger:       log,
		tracer:       tracer,
	}
}

// LockOptions configuration for the Lock method.
type LockOptions struct {
	ForceLatest bool
	Download    bool
	Parallelism int
}

// Lock resolves the apps of a definition, writes its lock file and optionally downloads
// the locked artifacts.
// A lock file that cannot be saved is reported and skips the download without failing.
func (a *App) Lock(ctx context.Context, workspace, name string, opts LockOptions) error {
	def, err := a.configLoader.Load(workspace, name)
	if err != nil {
		return zerr.Wrap(err, "failed to load definition")
	}

	manifest, err := a.locker.Lock(ctx, def, locker.Options{ForceLatest: opts.ForceLatest})
	if err != nil {
		return errors.Join(domain.ErrLockFailed, err)
	}

	if err := a.store.Write(def.LockPath(), manifest); err != nil {
		a.logger.Error(err)
		return nil
	}

	if !opts.Download {
		return nil
	}
	return a.download(ctx, def, manifest, opts.Parallelism)
}

// DownloadOptions configuration for the DownloadApps method.
type DownloadOptions struct {
	Parallelism int
}

// DownloadApps downloads every app of an existing lock file into the definition's user apps directory.
func (a *App) DownloadApps(ctx context.Context, workspace, name string, opts DownloadOptions) error {
	def, err := a.configLoader.Load(workspace, name)
	if err != nil {
		return zerr.Wrap(err, "failed to load definition")
	}

	manifest, err := a.store.Read(def.LockPath())
	if err != nil {
		return err
	}

	return a.download(ctx, def, manifest, opts.Parallelism)
}

func (a *App) download(ctx context.Context, def *domain.Definition, manifest *domain.LockManifest, parallelism int) error {
	ctx, span := a.tracer.Start(ctx, "download",
		ports.WithAttribute("mia.definition", def.Name),
		ports.WithAttribute("mia.parallelism", parallelism),
	)
	defer span.End()

	if err := a.downloader.Download(ctx, manifest, def.UserAppsPath(), parallelism); err != nil {
		span.RecordError(err)
		return errors.Join(domain.ErrDownloadFailed, err)
	}

	a.logger.Info(fmt.Sprintf("apps of %s downloaded to %s", def.Name, def.UserAppsPath()))
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Index bool
	Locks bool
}

// Clean removes cached repository indexes and lock files based on the provided options.
func (a *App) Clean(_ context.Context, workspace string, options CleanOptions) error {
	var errs error

	remove := func(pattern string, name string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to list %s", name)))
			return
		}
		for _, path := range paths {
			a.logger.Info(fmt.Sprintf("removing %s %s", name, path))
			if err := os.Remove(path); err != nil {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)), "path", path))
			}
		}
	}

	if options.Index {
		remove(filepath.Join(domain.ResourcesPath(workspace), "*"+domain.IndexCacheSuffix), "index cache")
	}

	if options.Locks {
		remove(filepath.Join(workspace, domain.DefinitionsDirName, "*", domain.LockFileName), "lock file")
	}

	return errs
}

// SetJSONLogs switches the logger between JSON and pretty output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}
