// Package locker resolves the app declarations of a definition into a lock manifest.
package locker

import (
	"context"
	"fmt"

	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a lock run.
type Options struct {
	// ForceLatest resolves pinned declarations through the latest path as well.
	ForceLatest bool
}

// Locker builds lock manifests by resolving every configured repository in turn.
type Locker struct {
	fetcher ports.IndexFetcher
	parser  ports.IndexParser
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a new Locker with the given dependencies.
func New(
	fetcher ports.IndexFetcher,
	parser ports.IndexParser,
	logger ports.Logger,
	tracer ports.Tracer,
) *Locker {
	return &Locker{
		fetcher: fetcher,
		parser:  parser,
		logger:  logger,
		tracer:  tracer,
	}
}

// Lock resolves the declarations of every repository of def, in repository order.
// The returned manifest is freshly built and holds one group per repository.
// Index fetch or parse failures abort the run.
func (l *Locker) Lock(ctx context.Context, def *domain.Definition, opts Options) (*domain.LockManifest, error) {
	ctx, span := l.tracer.Start(ctx, "lock", ports.WithAttribute("mia.definition", def.Name))
	defer span.End()

	manifest := domain.NewLockManifest()
	for _, repo := range def.Settings.Repositories {
		apps, err := l.lockRepository(ctx, def, repo, opts)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		manifest.Set(repo.AppsKey, apps)
	}

	return manifest, nil
}

func (l *Locker) lockRepository(
	ctx context.Context,
	def *domain.Definition,
	repo domain.Repository,
	opts Options,
) ([]domain.ResolvedApp, error) {
	ctx, span := l.tracer.Start(ctx, "lock.repository", ports.WithAttribute("mia.repository", repo.Name))
	defer span.End()

	index, err := l.loadIndex(ctx, def, repo)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "failed to load repository index"), "repository", repo.Name)
	}

	l.logger.Info(fmt.Sprintf("looking for packages in repository %s", repo.Name))

	apps, misses := Resolve(repo, index, def.Settings.Apps[repo.AppsKey], opts.ForceLatest)
	for _, app := range apps {
		l.logger.Info(fmt.Sprintf("found: %s:%d", app.Name, app.Code))
	}
	for _, decl := range misses {
		l.logger.Warn(fmt.Sprintf("not found: %s", decl.ApplicationID))
	}

	span.SetAttribute("mia.resolved", len(apps))
	span.SetAttribute("mia.unresolved", len(misses))

	return apps, nil
}

func (l *Locker) loadIndex(ctx context.Context, def *domain.Definition, repo domain.Repository) (ports.IndexQuerier, error) {
	ctx, span := l.tracer.Start(ctx, "index.fetch", ports.WithAttribute("mia.url", repo.IndexURL()))
	defer span.End()

	path, err := l.fetcher.EnsureIndex(ctx, def.ResourcesPath(), repo)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	index, err := l.parser.ParseIndex(path)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return index, nil
}

// Resolve maps each declaration to the package it resolves to in index.
// Declarations without a match are returned in misses instead; both slices keep
// declaration order. Latest-path records carry the index's market version code,
// exact-path records keep the declared code.
func Resolve(
	repo domain.Repository,
	index ports.IndexQuerier,
	declarations []domain.AppDeclaration,
	forceLatest bool,
) (apps []domain.ResolvedApp, misses []domain.AppDeclaration) {
	apps = make([]domain.ResolvedApp, 0, len(declarations))
	for _, decl := range declarations {
		app, ok := resolveOne(repo, index, decl, forceLatest)
		if !ok {
			misses = append(misses, decl)
			continue
		}
		apps = append(apps, app)
	}
	return apps, misses
}

func resolveOne(
	repo domain.Repository,
	index ports.IndexQuerier,
	decl domain.AppDeclaration,
	forceLatest bool,
) (domain.ResolvedApp, bool) {
	if decl.UsesLatest(forceLatest) {
		pkg, ok := index.ResolveLatest(decl.ApplicationID)
		if !ok {
			return domain.ResolvedApp{}, false
		}
		return newResolvedApp(repo, decl.ApplicationID, pkg.Code, pkg.PackageName), true
	}

	packageName, ok := index.ResolveExact(decl.ApplicationID, decl.Code.Code())
	if !ok {
		return domain.ResolvedApp{}, false
	}
	return newResolvedApp(repo, decl.ApplicationID, decl.Code.Code(), packageName), true
}

func newResolvedApp(repo domain.Repository, applicationID string, code int, packageName string) domain.ResolvedApp {
	return domain.ResolvedApp{
		Name:        applicationID,
		Code:        code,
		PackageName: packageName,
		PackageURL:  repo.PackageURL(packageName),
	}
}
