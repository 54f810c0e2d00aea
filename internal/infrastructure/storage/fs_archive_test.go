package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSLabelArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and resolves artifacts", func(t *testing.T) {
		archive, err := NewFSLabelArchive(t.TempDir())
		require.NoError(t, err)

		data := []byte("%PDF-1.4")
		require.NoError(t, archive.Store(ctx, "labels/M_Product/rec-1.pdf", "application/pdf", data))

		stored, err := os.ReadFile(filepath.Join(archive.baseDir, "labels", "M_Product", "rec-1.pdf"))
		require.NoError(t, err)
		assert.Equal(t, data, stored)

		url, expires, err := archive.DownloadURL(ctx, "labels/M_Product/rec-1.pdf", time.Minute)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "file://"))
		assert.True(t, expires.After(time.Now()))
	})

	t.Run("rejects empty key", func(t *testing.T) {
		archive, err := NewFSLabelArchive(t.TempDir())
		require.NoError(t, err)
		assert.Error(t, archive.Store(ctx, "", "application/pdf", nil))
	})

	t.Run("rejects keys escaping the root", func(t *testing.T) {
		archive, err := NewFSLabelArchive(t.TempDir())
		require.NoError(t, err)
		assert.Error(t, archive.Store(ctx, "../outside.pdf", "application/pdf", nil))
	})

	t.Run("download of unknown key fails", func(t *testing.T) {
		archive, err := NewFSLabelArchive(t.TempDir())
		require.NoError(t, err)
		_, _, err = archive.DownloadURL(ctx, "labels/missing.pdf", 0)
		assert.Error(t, err)
	})

	t.Run("empty base directory is rejected", func(t *testing.T) {
		_, err := NewFSLabelArchive("")
		assert.Error(t, err)
	})
}
