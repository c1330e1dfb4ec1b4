package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockwrap/internal/watch"
)

const waitFor = 5 * time.Second

func TestRun_RerunsOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "quote.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan string, 8)
	done := make(chan error, 1)

	go func() {
		done <- watch.Run(ctx, path, watch.Options{Debounce: 50 * time.Millisecond}, func(context.Context) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			calls <- string(data)
			return nil
		})
	}()

	select {
	case got := <-calls:
		assert.Equal(t, "first", got)
	case <-time.After(waitFor):
		t.Fatal("initial run did not happen")
	}

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o644))

	select {
	case got := <-calls:
		assert.Equal(t, "second", got)
	case <-time.After(waitFor):
		t.Fatal("change was not noticed")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_IgnoresSiblings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "quote.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	go func() {
		_ = watch.Run(ctx, path, watch.Options{Debounce: 10 * time.Millisecond}, func(context.Context) error {
			calls <- struct{}{}
			return nil
		})
	}()

	select {
	case <-calls:
	case <-time.After(waitFor):
		t.Fatal("initial run did not happen")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0o644))

	select {
	case <-calls:
		t.Fatal("sibling change triggered a run")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRun_ReportsErrorsAndKeepsGoing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quote.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("boom")
	reported := make(chan error, 1)

	done := make(chan error, 1)
	go func() {
		done <- watch.Run(ctx, path, watch.Options{OnError: func(err error) { reported <- err }},
			func(context.Context) error { return boom })
	}()

	select {
	case err := <-reported:
		require.ErrorIs(t, err, boom)
	case <-time.After(waitFor):
		t.Fatal("error was not reported")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestRun_NoFile(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", "-"} {
		err := watch.Run(context.Background(), path, watch.Options{}, func(context.Context) error { return nil })
		require.ErrorIs(t, err, watch.ErrNoFile)
	}
}
