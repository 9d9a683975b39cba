package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.paths...)
	sort.Strings(out)
	return out
}

func startWatcher(t *testing.T, dir string, handler EventHandler) (context.CancelFunc, chan error) {
	t.Helper()
	w, err := New(dir, handler, logger.Discard(), 2)
	require.NoError(t, err)
	w.(*implWatcher).settleDelay = 10 * time.Millisecond
	t.Cleanup(func() { w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()
	return cancel, errCh
}

func TestWatcherProcessesExistingAndNewFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(existing, []byte("https://youtu.be/dQw4w9WgXcQ\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignore me"), 0644))

	rec := &recorder{}
	cancel, errCh := startWatcher(t, dir, rec.handle)

	require.Eventually(t, func() bool { return len(rec.seen()) == 1 }, 2*time.Second, 10*time.Millisecond)

	added := filepath.Join(dir, "b.urls")
	require.NoError(t, os.WriteFile(added, []byte("https://youtu.be/aaaaaaaaaaa\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.mp4"), []byte("x"), 0644))

	require.Eventually(t, func() bool { return len(rec.seen()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{existing, added}, rec.seen())

	cancel()
	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherWaitsForHandlers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slow.txt"), []byte("x"), 0644))

	started := make(chan struct{})
	release := make(chan struct{})
	var finished bool
	var mu sync.Mutex

	handler := func(ctx context.Context, path string) error {
		close(started)
		<-release
		mu.Lock()
		finished = true
		mu.Unlock()
		return nil
	}

	cancel, errCh := startWatcher(t, dir, handler)
	<-started
	cancel()

	select {
	case <-errCh:
		t.Fatal("watcher returned before the handler finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-errCh
	mu.Lock()
	assert.True(t, finished)
	mu.Unlock()
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), func(context.Context, string) error { return nil }, logger.Discard(), 1)
	assert.Error(t, err)
}

func TestIsListFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"list.txt", true},
		{"LIST.TXT", true},
		{"batch.urls", true},
		{"video.mp4", false},
		{".hidden.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isListFile(tt.path))
		})
	}
}
