package probes

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// markerOps are the filesystem events that change the scheduler verdict.
const markerOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// MarkerWatcher calls onChange whenever the scheduler marker file appears or
// disappears. It watches the parent directory because the marker itself may
// not exist yet, and inotify cannot watch a missing path.
type MarkerWatcher struct {
	path     string
	onChange func()
	logger   *slog.Logger
}

// NewMarkerWatcher creates a watcher for the marker at path. If logger is nil,
// log output is discarded.
func NewMarkerWatcher(path string, onChange func(), logger *slog.Logger) *MarkerWatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MarkerWatcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		logger:   logger,
	}
}

// Run watches until ctx is cancelled. It returns an error only if the watch
// cannot be established.
func (w *MarkerWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating marker watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	w.logger.InfoContext(ctx, "watching scheduler marker", slog.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || event.Op&markerOps == 0 {
				continue
			}
			w.logger.DebugContext(ctx, "scheduler marker changed",
				slog.String("path", w.path),
				slog.String("op", event.Op.String()),
			)
			w.onChange()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "marker watcher error",
				slog.String("operation", "MarkerWatcher.Run"),
				slog.Any("error", werr),
			)
		}
	}
}
