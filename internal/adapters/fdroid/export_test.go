package fdroid

import (
	"net/http"
	"time"
)

// NewFetcherWithClient exports newFetcherWithClient for testing purposes.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return newFetcherWithClient(client)
}

// NewHTTPClient exports newHTTPClient for testing purposes.
func NewHTTPClient(headerTimeout time.Duration) *http.Client {
	return newHTTPClient(headerTimeout)
}

// HTTPClient returns the client used by f.
func (f *Fetcher) HTTPClient() *http.Client {
	return f.httpClient
}
