// Package fdroid implements the repository index ports for F-Droid style repositories.
package fdroid

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	responseHeaderTimeout = 30 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
)

// Fetcher implements ports.IndexFetcher with a local file cache.
// A cached index is reused unconditionally; the cache is only refreshed by removing the file.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a new Fetcher with the default HTTP client.
func NewFetcher() *Fetcher {
	return newFetcherWithClient(newHTTPClient(responseHeaderTimeout))
}

// newHTTPClient returns a client that bounds the wait for response headers only.
// Index documents can be large, so the body read is left to the request context.
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

// newFetcherWithClient creates a Fetcher with a custom http client (used for testing).
func newFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{
		httpClient: client,
	}
}

// EnsureIndex returns the path of the cached index document of repo, downloading it into
// cacheDir first when no cached copy exists.
func (f *Fetcher) EnsureIndex(ctx context.Context, cacheDir string, repo domain.Repository) (string, error) {
	path := domain.IndexCachePath(cacheDir, repo.AppsKey)

	info, err := os.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		return path, nil
	case err == nil:
		return "", fetchError(zerr.With(zerr.New("index cache path is not a regular file"), "path", path))
	case !errors.Is(err, fs.ErrNotExist):
		return "", fetchError(zerr.With(zerr.Wrap(err, "failed to stat index cache"), "path", path))
	}

	data, err := f.download(ctx, repo.IndexURL())
	if err != nil {
		return "", fetchError(zerr.With(err, "repository", repo.Name))
	}

	if err := atomicWriteFile(path, data); err != nil {
		return "", fetchError(zerr.With(zerr.Wrap(err, "failed to write index cache"), "path", path))
	}

	return path, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "request failed"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New("unexpected response status"), "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read response body"), "url", url)
	}

	return data, nil
}

// fetchError marks err as a repository index fetch failure.
func fetchError(err error) error {
	return errors.Join(domain.ErrIndexFetchFailed, err)
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "index-*.xml.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
