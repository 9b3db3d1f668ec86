package download

import (
	"net/http"
	"time"

	"go.trai.ch/mia/internal/core/ports"
)

// NewDownloaderWithClient exposes newDownloaderWithClient for tests.
func NewDownloaderWithClient(client *http.Client, logger ports.Logger, tracer ports.Tracer) *Downloader {
	return newDownloaderWithClient(client, logger, tracer)
}

// NewHTTPClient exposes newHTTPClient for tests.
func NewHTTPClient(headerTimeout time.Duration) *http.Client {
	return newHTTPClient(headerTimeout)
}

// HTTPClient returns the client used by d.
func (d *Downloader) HTTPClient() *http.Client {
	return d.httpClient
}
