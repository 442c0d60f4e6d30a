// Package watcher re-runs work when puzzle input files change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/conneroisu/subsea/internal/logging"
)

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type EventType
	Path string
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// ChangeHandler handles a debounced batch of changes to watched files
type ChangeHandler func(ctx context.Context, events []ChangeEvent) error

// FileWatcher watches individual files with debouncing. It watches each
// file's parent directory so editors that save by rename are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	delay   time.Duration
	logger  logging.Logger

	mutex   sync.RWMutex
	files   map[string]bool
	handler ChangeHandler

	pendingMu sync.Mutex
	pending   map[string]ChangeEvent
	timer     *time.Timer
	output    chan []ChangeEvent
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounceDelay time.Duration, logger logging.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		watcher: w,
		delay:   debounceDelay,
		logger:  logging.OrNop(logger).WithComponent("watcher"),
		files:   make(map[string]bool),
		pending: make(map[string]ChangeEvent),
		output:  make(chan []ChangeEvent, 1),
	}, nil
}

// SetHandler sets the function invoked for each debounced batch
func (fw *FileWatcher) SetHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handler = handler
}

// AddFile starts watching path
func (fw *FileWatcher) AddFile(path string) error {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	if err := fw.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	fw.mutex.Lock()
	fw.files[abs] = true
	fw.mutex.Unlock()
	return nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			fw.handleFsnotifyEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn(ctx, err, "File watcher error")
		case events := <-fw.output:
			fw.dispatch(ctx, events)
		}
	}
}

func (fw *FileWatcher) stop() {
	fw.pendingMu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.pendingMu.Unlock()
	_ = fw.watcher.Close()
}

func (fw *FileWatcher) dispatch(ctx context.Context, events []ChangeEvent) {
	fw.mutex.RLock()
	handler := fw.handler
	fw.mutex.RUnlock()

	if handler == nil {
		return
	}
	if err := handler(ctx, events); err != nil {
		fw.logger.Error(ctx, err, "File watcher handler error", "events", len(events))
	}
}

func (fw *FileWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	fw.mutex.RLock()
	watched := fw.files[abs]
	fw.mutex.RUnlock()
	if !watched {
		return
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventTypeCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventTypeModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		eventType = EventTypeDeleted
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		eventType = EventTypeRenamed
	default:
		return
	}

	fw.addEvent(ChangeEvent{Type: eventType, Path: abs})
}

// addEvent queues an event and restarts the debounce timer.
func (fw *FileWatcher) addEvent(event ChangeEvent) {
	fw.pendingMu.Lock()
	defer fw.pendingMu.Unlock()

	fw.pending[event.Path] = event

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.delay, fw.flush)
}

func (fw *FileWatcher) flush() {
	fw.pendingMu.Lock()
	defer fw.pendingMu.Unlock()

	if len(fw.pending) == 0 {
		return
	}

	events := make([]ChangeEvent, 0, len(fw.pending))
	for _, event := range fw.pending {
		events = append(events, event)
	}

	select {
	case fw.output <- events:
		fw.pending = make(map[string]ChangeEvent)
	default:
		// A batch is already waiting; keep these for the next flush.
		fw.timer = time.AfterFunc(fw.delay, fw.flush)
	}
}
