package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/df07/go-prism-raycaster/pkg/core"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports debounced changes to a set of files.
// It watches the parent directories so editors that save by rename are still seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   core.Logger
	debounce time.Duration

	mu     sync.Mutex
	files  map[string]struct{}
	dirs   map[string]struct{}
	timers map[string]*time.Timer
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger core.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		logger:   logger,
		debounce: debounce,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch adds files to the watch set. Their directories must exist.
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if _, ok := fw.dirs[dir]; !ok {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = struct{}{}
		}

		fw.files[absPath] = struct{}{}
	}

	return nil
}

// Run delivers changes to onChange until ctx is cancelled or the watcher is closed.
// Calls to onChange happen on the caller's goroutine and never overlap.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	fired := make(chan string)
	done := make(chan struct{})
	defer func() {
		close(done)
		fw.stopTimers()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			// Only trigger on write or create events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.schedule(filepath.Clean(event.Name), fired, done)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			if fw.logger != nil {
				fw.logger.Printf("Watcher error: %v\n", err)
			}

		case path := <-fired:
			onChange(path)
		}
	}
}

// schedule restarts the debounce timer for a watched file.
// A timer that fires after Run has returned gives up once done is closed.
func (fw *FileWatcher) schedule(path string, fired chan<- string, done <-chan struct{}) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, watched := fw.files[path]; !watched {
		return
	}

	if timer, exists := fw.timers[path]; exists {
		timer.Stop()
	}

	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		deliver(path, fired, done)
	})
}

// deliver hands path to Run, reporting false if Run returned first
func deliver(path string, fired chan<- string, done <-chan struct{}) bool {
	select {
	case fired <- path:
		return true
	case <-done:
		return false
	}
}

func (fw *FileWatcher) stopTimers() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for path, timer := range fw.timers {
		timer.Stop()
		delete(fw.timers, path)
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
