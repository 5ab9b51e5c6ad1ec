package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1}`), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	calls := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, 50*time.Millisecond, func(p string) {
			calls <- p
		})
	}()

	// The handler fires once up front.
	select {
	case p := <-calls:
		assert.Equal(t, path, filepath.Clean(p))
	case <-ctx.Done():
		t.Fatal("timed out waiting for the initial evaluation")
	}

	// Give the watcher a moment to arm, then rewrite the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"cables":[]}`), 0o644))

	select {
	case <-calls:
	case <-ctx.Done():
		t.Fatal("timed out waiting for the change notification")
	}

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan string, 8)
	go Run(ctx, path, 50*time.Millisecond, func(p string) { calls <- p })

	<-calls // initial evaluation

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))

	select {
	case <-calls:
		t.Fatal("changes to sibling files must not trigger the handler")
	case <-time.After(300 * time.Millisecond):
	}
}
