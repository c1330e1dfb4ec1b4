package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupSuffix is appended to an output path to name its backup.
const BackupSuffix = ".bak"

// BackupPath returns the backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies an existing output at path to its backup path before
// it is overwritten. The backup always holds the previous output, so an
// older backup is replaced. It reports whether a backup was written; a
// missing path is not an error.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat original for backup: %w", err)
	}
	if stat.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, BackupPath(path), content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}

	return true, nil
}

// WriteOutput writes content to path atomically, first backing up an
// existing file when backup is set.
func WriteOutput(ctx context.Context, path string, content []byte, backup bool) error {
	if backup {
		if _, err := CreateBackup(ctx, path); err != nil {
			return err
		}
	}
	return WriteAtomic(ctx, path, content, DefaultFileMode)
}
