package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohilite/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".gohilite.yml.bak", fsutil.BackupPath(".gohilite.yml"))
	assert.Equal(t, "/a/b/config.yaml.bak", fsutil.BackupPath("/a/b/config.yaml"))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("copies existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".gohilite.yml")
		require.NoError(t, os.WriteFile(path, []byte("jobs: 2\n"), 0600))

		created, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.True(t, created)

		got, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "jobs: 2\n", string(got))

		stat, err := os.Stat(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), stat.Mode().Perm())
	})

	t.Run("keeps existing backup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".gohilite.yml")
		require.NoError(t, os.WriteFile(path, []byte("new"), 0644))
		require.NoError(t, os.WriteFile(fsutil.BackupPath(path), []byte("old"), 0644))

		created, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, created)

		got, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "old", string(got))
	})

	t.Run("missing original is not an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "absent.yml")
		created, err := fsutil.CreateBackup(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := fsutil.CreateBackup(ctx, filepath.Join(t.TempDir(), "x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRemoveBackup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fsutil.BackupPath(path), []byte("x"), 0644))

	removed, err := fsutil.RemoveBackup(path)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = fsutil.RemoveBackup(path)
	require.NoError(t, err)
	assert.False(t, removed)
}
