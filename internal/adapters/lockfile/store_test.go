package lockfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mia/internal/adapters/lockfile"
	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func sampleManifest() *domain.LockManifest {
	m := domain.NewLockManifest()
	m.Set("apps_fdroid", []domain.ResolvedApp{
		{
			Name:        "org.fdroid.fdroid",
			Code:        1019050,
			PackageName: "org.fdroid.fdroid_1019050.apk",
			PackageURL:  "https://f-droid.org/repo/org.fdroid.fdroid_1019050.apk",
		},
		{
			Name:        "org.example.foo",
			Code:        12,
			PackageName: "foo_12.apk",
			PackageURL:  "https://f-droid.org/repo/foo_12.apk",
		},
	})
	m.Set("apps_extra", nil)
	return m
}

func newStore(t *testing.T) (*lockfile.Store, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return lockfile.NewStore(log), log
}

func TestMarshal_Golden(t *testing.T) {
	t.Parallel()

	data, err := lockfile.Marshal(sampleManifest())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "manifest", data)
}

func TestMarshal_Empty(t *testing.T) {
	t.Parallel()

	data, err := lockfile.Marshal(domain.NewLockManifest())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	back, err := lockfile.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, 0, back.Len())
}

func TestStore_WriteRead(t *testing.T) {
	t.Parallel()

	store, log := newStore(t)
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	log.EXPECT().Info("lock file written to " + path).Times(1)

	require.NoError(t, store.Write(path, sampleManifest()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.True(t, sampleManifest().Equal(got))
	assert.Equal(t, []string{"apps_fdroid", "apps_extra"}, got.Keys())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_Write_Replaces(t *testing.T) {
	t.Parallel()

	store, log := newStore(t)
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale: []\n"), domain.FilePerm))
	log.EXPECT().Info("lock file written to " + path).Times(1)

	require.NoError(t, store.Write(path, sampleManifest()))

	got, err := store.Read(path)
	require.NoError(t, err)
	_, stale := got.Get("stale")
	assert.False(t, stale)
	assert.Equal(t, 2, got.Len())
}

func TestStore_Write_Unchanged(t *testing.T) {
	t.Parallel()

	store, log := newStore(t)
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	gomock.InOrder(
		log.EXPECT().Info("lock file written to "+path).Times(1),
		log.EXPECT().Info("lock file unchanged: "+path).Times(1),
	)

	require.NoError(t, store.Write(path, sampleManifest()))
	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, store.Write(path, sampleManifest()))
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, os.SameFile(before, after), "an unchanged lock file must not be replaced")
}

func TestStore_Write_Failure(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	store, log := newStore(t)
	dir := t.TempDir()
	path := filepath.Join(dir, domain.LockFileName)
	previous := []byte("apps_fdroid: []\n")
	require.NoError(t, os.WriteFile(path, previous, domain.FilePerm))

	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() {
		_ = os.Chmod(dir, 0o755)
	})

	log.EXPECT().Info(gomock.Any()).Times(0)

	err := store.Write(path, sampleManifest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLockWriteFailed))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, previous, data)
}

func TestStore_Read_Errors(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	dir := t.TempDir()

	_, err := store.Read(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrLockNotFound)

	corrupt := filepath.Join(dir, "corrupt.yaml")
	require.NoError(t, os.WriteFile(corrupt, []byte("- not\n- a mapping\n"), domain.FilePerm))
	_, err = store.Read(corrupt)
	assert.ErrorIs(t, err, domain.ErrLockParseFailed)

	_, err = store.Read(dir)
	assert.ErrorIs(t, err, domain.ErrLockReadFailed)
}

func TestStore_Read_Empty(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t)
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	require.NoError(t, os.WriteFile(path, nil, domain.FilePerm))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
