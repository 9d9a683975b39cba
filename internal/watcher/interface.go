package watcher

import "context"

// Watcher monitors the drop folder for URL list files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles one list file
type EventHandler func(ctx context.Context, filePath string) error
