package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/blockwrap/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	if got := fsutil.BackupPath("/out/result.zip"); got != "/out/result.zip.bak" {
		t.Errorf("BackupPath() = %q", got)
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	t.Run("missing original", func(t *testing.T) {
		t.Parallel()

		created, err := fsutil.CreateBackup(context.Background(), filepath.Join(t.TempDir(), "result.zip"))
		if err != nil || created {
			t.Errorf("CreateBackup() = %v, %v; want false, nil", created, err)
		}
	})

	t.Run("replaces older backup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "result.zip")
		ctx := context.Background()

		for _, content := range []string{"v1", "v2"} {
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("setup: %v", err)
			}
			created, err := fsutil.CreateBackup(ctx, path)
			if err != nil || !created {
				t.Fatalf("CreateBackup() = %v, %v; want true, nil", created, err)
			}

			got, err := os.ReadFile(fsutil.BackupPath(path))
			if err != nil {
				t.Fatalf("read backup: %v", err)
			}
			if string(got) != content {
				t.Errorf("backup = %q, want %q", got, content)
			}
		}
	})
}

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "result.png")
	ctx := context.Background()

	if err := fsutil.WriteOutput(ctx, path, []byte("old"), true); err != nil {
		t.Fatalf("first WriteOutput() error = %v", err)
	}
	if _, err := os.Stat(fsutil.BackupPath(path)); !os.IsNotExist(err) {
		t.Errorf("unexpected backup for fresh output: %v", err)
	}

	if err := fsutil.WriteOutput(ctx, path, []byte("new"), true); err != nil {
		t.Fatalf("second WriteOutput() error = %v", err)
	}

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != "old" {
		t.Errorf("backup = %q, want %q", backup, "old")
	}

	current, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(current) != "new" {
		t.Errorf("output = %q, want %q", current, "new")
	}
}

func FuzzWriteOutput(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a\nb\n\nc\n\n"))
	f.Add([]byte("\x89PNG\r\n\x1a\n"))

	f.Fuzz(func(t *testing.T, content []byte) {
		path := filepath.Join(t.TempDir(), "out")
		if err := fsutil.WriteOutput(context.Background(), path, content, false); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}

		got, _, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(content))
		}
	})
}
