package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mia/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "single standard error",
			err:  errors.New("simple error"),
			want: []logger.ErrorEntry{{Message: "simple error"}},
		},
		{
			name: "zerr wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: []logger.ErrorEntry{
				{Message: "outer layer", Metadata: map[string]any{}},
				{Message: "middle layer", Metadata: map[string]any{}},
				{Message: "root cause"},
			},
		},
		{
			name: "zerr with metadata",
			err:  zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			want: []logger.ErrorEntry{
				{Message: "base error", Metadata: map[string]any{"key1": "value1", "key2": 42}},
			},
		},
		{
			name: "metadata on a standard error moves to its entry",
			err:  zerr.With(errors.New("permission denied"), "path", "/ws/definitions/my-phone/apps_lock.yaml"),
			want: []logger.ErrorEntry{
				{Message: "permission denied", Metadata: map[string]any{"path": "/ws/definitions/my-phone/apps_lock.yaml"}},
			},
		},
		{
			name: "joined errors are flattened in order",
			err: errors.Join(
				zerr.New("download failed"),
				zerr.With(zerr.New("failed to download artifact"), "package_name", "foo_12.apk"),
				zerr.With(zerr.New("failed to download artifact"), "package_name", "bar_3.apk"),
			),
			want: []logger.ErrorEntry{
				{Message: "download failed", Metadata: map[string]any{}},
				{Message: "failed to download artifact", Metadata: map[string]any{"package_name": "foo_12.apk"}},
				{Message: "failed to download artifact", Metadata: map[string]any{"package_name": "bar_3.apk"}},
			},
		},
		{
			name: "fmt wrapped error ends the chain",
			err:  zerr.Wrap(fmt.Errorf("decode: %w", errors.New("eof")), "failed to parse"),
			want: []logger.ErrorEntry{
				{Message: "failed to parse", Metadata: map[string]any{}},
				{Message: "decode: eof"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}

	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, logger.CollectErrorEntriesExported(nil))
	})
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": "m"}},
			},
			want: "Error: error\n       alpha: a\n       mike: m\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"status_code": 404}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      status_code: 404",
		},
		{
			name: "multiline messages",
			entries: []logger.ErrorEntry{
				{Message: "line1\nline2"},
				{Message: "cause line1\ncause line2"},
			},
			want: "Error: line1\n       line2\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
