package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

var supportedExts = []string{".txt", ".urls"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// Start processes list files already in the input directory, then waits for new ones.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(supportedExts, ", "))

	existing, err := w.existingFiles()
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	for _, path := range existing {
		w.logger.Info(ctx, "Found pending list: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return w.shutdown(ctx, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return w.shutdown(ctx, ctx.Err())

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isListFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New list detected: %s", event.Name)

			// Small delay to ensure file is fully written
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return w.shutdown(ctx, ctx.Err())
			}

			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.shutdown(ctx, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// dispatch hands path to the handler on its own goroutine once a slot is free.
// A path that is still being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	w.mu.Lock()
	if _, busy := w.inFlight[path]; busy {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[path] = struct{}{}
	w.mu.Unlock()

	// Acquire semaphore slot (blocks if max concurrent reached)
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.done(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.done(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) done(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

func (w *implWatcher) shutdown(ctx context.Context, err error) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return err
}

func (w *implWatcher) existingFiles() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isListFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(w.inputDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// isListFile checks if the file has a supported list extension
func isListFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedExts {
		if ext == format {
			return true
		}
	}
	return false
}
