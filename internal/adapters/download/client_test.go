package download_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mia/internal/adapters/download"
	"go.trai.ch/mia/internal/adapters/telemetry"
	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	slowChunks     = 5
	slowChunkDelay = 150 * time.Millisecond
	headerTimeout  = 100 * time.Millisecond
)

// newSlowServer answers immediately and then streams its body in delayed chunks,
// taking several header timeouts to finish.
func newSlowServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, _ := w.(http.Flusher)
		w.WriteHeader(http.StatusOK)
		for i := 0; i < slowChunks; i++ {
			if flusher != nil {
				flusher.Flush()
			}
			select {
			case <-r.Context().Done():
				return
			case <-time.After(slowChunkDelay):
			}
			_, _ = w.Write([]byte("chunk"))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewDownloader_NoOverallTimeout(t *testing.T) {
	t.Parallel()

	d := download.NewDownloader(nil, telemetry.NewNoOpTracer())
	assert.Zero(t, d.HTTPClient().Timeout)
}

func TestDownloader_Download_SlowBody(t *testing.T) {
	t.Parallel()

	srv := newSlowServer(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("downloaded: " + srv.URL + "/big.apk").Times(1)

	d := download.NewDownloaderWithClient(download.NewHTTPClient(headerTimeout), log, telemetry.NewNoOpTracer())

	manifest := domain.NewLockManifest()
	manifest.Set("apps", []domain.ResolvedApp{{
		Name:        "org.example.big",
		Code:        1,
		PackageName: "big.apk",
		PackageURL:  srv.URL + "/big.apk",
	}})

	dest := t.TempDir()
	require.NoError(t, d.Download(context.Background(), manifest, dest, 1))

	data, err := os.ReadFile(filepath.Join(dest, "big.apk"))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("chunk", slowChunks), string(data))
}

func TestDownloader_Download_ContextCancelsSlowBody(t *testing.T) {
	t.Parallel()

	srv := newSlowServer(t)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	d := download.NewDownloaderWithClient(download.NewHTTPClient(headerTimeout), log, telemetry.NewNoOpTracer())

	manifest := domain.NewLockManifest()
	manifest.Set("apps", []domain.ResolvedApp{{
		Name:        "org.example.big",
		Code:        1,
		PackageName: "big.apk",
		PackageURL:  srv.URL + "/big.apk",
	}})

	ctx, cancel := context.WithTimeout(context.Background(), 2*slowChunkDelay)
	defer cancel()

	dest := t.TempDir()
	err := d.Download(ctx, manifest, dest, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtifactFetchFailed)
	assert.NoFileExists(t, filepath.Join(dest, "big.apk"))
}
