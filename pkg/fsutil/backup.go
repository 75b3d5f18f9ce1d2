package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is the suffix used for sidecar backup files.
const BackupSuffix = ".bak"

// BackupPath returns the sidecar backup path for the given file.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the file at path to its sidecar backup.
// Returns true if a backup was created, false if the file does not exist
// or a backup is already present.
//
// Backup creation is idempotent: an existing backup is never overwritten,
// so repeated runs keep the oldest content.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create backup: %w", ctx.Err())
	default:
	}

	backupPath := BackupPath(path)

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, info, err := ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, info.Mode.Perm()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}

// RemoveBackup removes the backup file for the given path if it exists.
// Returns true if a backup was removed, false if none existed.
func RemoveBackup(path string) (bool, error) {
	err := os.Remove(BackupPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}
