package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mia/internal/adapters/config"
	"go.trai.ch/mia/internal/core/domain"
	"go.trai.ch/mia/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// writeSettings creates <root>/definitions/<name>/settings.yaml with content.
func writeSettings(t *testing.T, root, name, content string) {
	t.Helper()
	dir := domain.DefinitionPath(root, name)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SettingsFileName), []byte(content), domain.FilePerm))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "my-phone", `
general:
  cm_device_codename: bacon
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo/
    apps_key: apps_fdroid
  - name: Extra
    base_url: http://extra.example.org/repo
    apps_key: apps_extra
apps_extra:
  - name: org.example.bar
    code: "7"
apps_fdroid:
  - name: org.fdroid.fdroid
    code: latest
  - name: org.example.foo
    code: 1024
`)

	loader, _ := newLoader(t)
	def, err := loader.Load(root, "my-phone")
	require.NoError(t, err)

	assert.Equal(t, "my-phone", def.Name)
	assert.Equal(t, root, def.Workspace)
	assert.Equal(t, []domain.Repository{
		{Name: "F-Droid", BaseURL: "https://f-droid.org/repo", AppsKey: "apps_fdroid"},
		{Name: "Extra", BaseURL: "http://extra.example.org/repo", AppsKey: "apps_extra"},
	}, def.Settings.Repositories)

	assert.Equal(t, []domain.AppDeclaration{
		{ApplicationID: "org.fdroid.fdroid", Code: domain.Latest()},
		{ApplicationID: "org.example.foo", Code: domain.Pinned(1024)},
	}, def.Settings.Apps["apps_fdroid"])
	assert.Equal(t, []domain.AppDeclaration{
		{ApplicationID: "org.example.bar", Code: domain.Pinned(7)},
	}, def.Settings.Apps["apps_extra"])
}

func TestLoader_Load_EmptyAppsList(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "my-phone", `
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo
    apps_key: apps_fdroid
apps_fdroid:
`)

	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(`repository F-Droid declares no apps under "apps_fdroid"`).Times(1)

	def, err := loader.Load(root, "my-phone")
	require.NoError(t, err)
	assert.Empty(t, def.Settings.Apps["apps_fdroid"])
	assert.Len(t, def.Settings.Repositories, 1)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name     string
		defName  string
		settings string
		wantErr  error
	}{
		{
			name:    "invalid definition name",
			defName: "My_Phone",
			wantErr: domain.ErrInvalidDefinitionName,
		},
		{
			name:    "missing definition",
			defName: "missing",
			wantErr: domain.ErrDefinitionNotFound,
		},
		{
			name:     "malformed yaml",
			defName:  "broken",
			settings: "repositories: [",
			wantErr:  domain.ErrSettingsParseFailed,
		},
		{
			name:     "top level is not a mapping",
			defName:  "list",
			settings: "- a\n- b\n",
			wantErr:  domain.ErrSettingsParseFailed,
		},
		{
			name:    "repository without base url",
			defName: "no-url",
			settings: `
repositories:
  - name: F-Droid
    apps_key: apps_fdroid
apps_fdroid: []
`,
			wantErr: domain.ErrInvalidRepository,
		},
		{
			name:    "apps key escaping the resources directory",
			defName: "traversal",
			settings: `
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo
    apps_key: ../apps
`,
			wantErr: domain.ErrInvalidRepository,
		},
		{
			name:    "unsupported url scheme",
			defName: "ftp",
			settings: `
repositories:
  - name: F-Droid
    base_url: ftp://f-droid.org/repo
    apps_key: apps_fdroid
apps_fdroid: []
`,
			wantErr: domain.ErrInvalidRepository,
		},
		{
			name:    "duplicate apps key",
			defName: "duplicate",
			settings: `
repositories:
  - name: One
    base_url: https://one.example.org
    apps_key: apps
  - name: Two
    base_url: https://two.example.org
    apps_key: apps
apps:
  - name: foo
    code: 1
`,
			wantErr: domain.ErrDuplicateAppsKey,
		},
		{
			name:    "missing apps list",
			defName: "no-apps",
			settings: `
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo
    apps_key: apps_fdroid
`,
			wantErr: domain.ErrMissingAppsList,
		},
		{
			name:    "invalid version code",
			defName: "bad-code",
			settings: `
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo
    apps_key: apps_fdroid
apps_fdroid:
  - name: foo
    code: newest
`,
			wantErr: domain.ErrInvalidVersionCode,
		},
		{
			name:    "missing version code",
			defName: "no-code",
			settings: `
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo
    apps_key: apps_fdroid
apps_fdroid:
  - name: foo
`,
			wantErr: domain.ErrInvalidVersionCode,
		},
		{
			name:    "app without name",
			defName: "no-name",
			settings: `
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo
    apps_key: apps_fdroid
apps_fdroid:
  - code: 1
`,
			wantErr: domain.ErrSettingsParseFailed,
		},
		{
			name:    "apps list is not a list",
			defName: "scalar-apps",
			settings: `
repositories:
  - name: F-Droid
    base_url: https://f-droid.org/repo
    apps_key: apps_fdroid
apps_fdroid: foo
`,
			wantErr: domain.ErrSettingsParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.settings != "" {
				writeSettings(t, root, tt.defName, tt.settings)
			}

			loader, mockLogger := newLoader(t)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			def, err := loader.Load(root, tt.defName)
			require.Error(t, err)
			assert.Nil(t, def)
			// zerr.With copies sentinels, so match on the message.
			assert.Contains(t, err.Error(), tt.wantErr.Error())
		})
	}
}
