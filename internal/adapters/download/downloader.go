// Package download fetches locked artifacts into a definition's user apps directory.
package download

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	responseHeaderTimeout = 30 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
)

// Downloader implements ports.ArtifactDownloader over HTTP.
type Downloader struct {
	httpClient *http.Client
	logger     ports.Logger
	tracer     ports.Tracer
}

// NewDownloader creates a new Downloader with the default HTTP client.
func NewDownloader(logger ports.Logger, tracer ports.Tracer) *Downloader {
	return newDownloaderWithClient(newHTTPClient(responseHeaderTimeout), logger, tracer)
}

// newHTTPClient returns a client that bounds the wait for response headers only.
// Bodies stream for as long as they take; cancellation comes from the request context.
func newHTTPClient(headerTimeout time.Duration) *http.Client {
	transport, _ := http.DefaultTransport.(*http.Transport)
	if transport == nil {
		transport = &http.Transport{}
	}
	transport = transport.Clone()
	transport.ResponseHeaderTimeout = headerTimeout
	transport.TLSHandshakeTimeout = tlsHandshakeTimeout
	return &http.Client{Transport: transport}
}

// newDownloaderWithClient creates a Downloader with a custom http client (used for testing).
func newDownloaderWithClient(client *http.Client, logger ports.Logger, tracer ports.Tracer) *Downloader {
	return &Downloader{
		httpClient: client,
		logger:     logger,
		tracer:     tracer,
	}
}

// Download stores every record of the manifest as destDir/<package_name>.
func (d *Downloader) Download(
	ctx context.Context,
	manifest *domain.LockManifest,
	destDir string,
	parallelism int,
) error {
	if err := os.MkdirAll(destDir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrDestinationCreateFailed, zerr.With(err, "path", destDir))
	}

	apps := manifest.Apps()
	if parallelism <= 1 {
		for _, app := range apps {
			if err := d.fetch(ctx, app, destDir); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, len(apps))
	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, app := range apps {
		g.Go(func() error {
			errs[i] = d.fetch(ctx, app, destDir)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

func (d *Downloader) fetch(ctx context.Context, app domain.ResolvedApp, destDir string) (err error) {
	ctx, span := d.tracer.Start(ctx, "download.artifact",
		ports.WithAttribute("mia.app", app.Name),
		ports.WithAttribute("mia.url", app.PackageURL),
	)
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	if !isSafeFileName(app.PackageName) {
		return errors.Join(domain.ErrArtifactFetchFailed,
			zerr.With(zerr.New("unsafe package name"), "package_name", app.PackageName))
	}

	path := filepath.Join(destDir, app.PackageName)
	if err := d.store(ctx, app.PackageURL, path); err != nil {
		return errors.Join(domain.ErrArtifactFetchFailed, zerr.With(zerr.Wrap(err, app.Name), "package_name", app.PackageName))
	}

	d.logger.Info("downloaded: " + app.PackageURL)
	return nil
}

// store streams url into a temporary file next to path and renames it into place.
func (d *Downloader) store(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New("unexpected response status"), "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", url)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "path", path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temporary file"), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file permissions"), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move artifact into place"), "path", path)
	}

	return nil
}

// isSafeFileName reports whether name is a plain file name that stays inside its directory.
func isSafeFileName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
