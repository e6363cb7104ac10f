// Package reload re-applies the configuration file to running modules,
// triggered by a file watcher or by SIGHUP.
package reload

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultPollInterval = 5 * time.Second

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// ConfigPath is the path to the configuration file to watch.
	ConfigPath string

	// PollInterval is how often to check for file changes. Polling runs
	// alongside filesystem notifications and catches what they miss.
	// Defaults to 5 seconds if zero.
	PollInterval time.Duration

	// Logger receives watcher diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

func (c WatcherConfig) pollIntervalOrDefault() time.Duration {
	if c.PollInterval > 0 {
		return c.PollInterval
	}
	return defaultPollInterval
}

// EventType describes the type of file change event.
type EventType string

const (
	// EventModified indicates the config file was modified.
	EventModified EventType = "modified"
)

// Event represents a file change notification.
type Event struct {
	Type       EventType
	ConfigPath string
	ModTime    time.Time
}

// fileState is what the watcher compares between polls. Size catches
// rewrites that land within the filesystem's mtime resolution.
type fileState struct {
	modTime time.Time
	size    int64
}

func (s fileState) changed(prev fileState) bool {
	return s.modTime.After(prev.modTime) || s.size != prev.size
}

// Watcher reports modifications of a configuration file. It listens for
// filesystem notifications on the file's directory and polls as a fallback.
type Watcher struct {
	cfg     WatcherConfig
	events  chan Event
	stop    chan struct{}
	stopped chan struct{}

	started   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewWatcher creates a new file watcher.
func NewWatcher(cfg WatcherConfig) *Watcher {
	return &Watcher{
		cfg:     cfg,
		events:  make(chan Event, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins watching the config file. Safe to call multiple times; only
// the first call starts the goroutine.
func (w *Watcher) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		w.started.Store(true)
		go w.poll(ctx)
	})
}

// Events returns the channel of file change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher and waits for its goroutine to exit.
// Safe to call multiple times and before Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	if w.started.Load() {
		<-w.stopped
	}
}

func (w *Watcher) poll(ctx context.Context) {
	defer close(w.stopped)

	interval := w.cfg.pollIntervalOrDefault()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Nil channels block forever, leaving polling alone when notifications
	// are unavailable.
	var (
		fsEvents <-chan fsnotify.Event
		fsErrors <-chan error
	)
	if fw := w.notifier(); fw != nil {
		defer fw.Close()
		fsEvents, fsErrors = fw.Events, fw.Errors
	}

	last, _ := w.stat()
	check := func() {
		current, ok := w.stat()
		if !ok || !current.changed(last) {
			return
		}
		last = current
		select {
		case w.events <- Event{
			Type:       EventModified,
			ConfigPath: w.cfg.ConfigPath,
			ModTime:    current.modTime,
		}:
		default:
			// A reload is already pending.
		}
	}

	file := filepath.Base(w.cfg.ConfigPath)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-ticker.C:
			check()
		case ev, ok := <-fsEvents:
			if !ok {
				fsEvents, fsErrors = nil, nil
				continue
			}
			if strings.EqualFold(filepath.Base(ev.Name), file) &&
				ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				check()
			}
		case err, ok := <-fsErrors:
			if !ok {
				fsEvents, fsErrors = nil, nil
				continue
			}
			w.logger().Warn("reload: watch error, relying on polling", "error", err)
		}
	}
}

// notifier watches the config file's directory so editors that replace the
// file by rename are still seen. It returns nil when notifications cannot be
// set up.
func (w *Watcher) notifier() *fsnotify.Watcher {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger().Warn("reload: file notifications unavailable", "error", err)
		return nil
	}
	if err := fw.Add(filepath.Dir(w.cfg.ConfigPath)); err != nil {
		_ = fw.Close()
		w.logger().Warn("reload: file notifications unavailable", "error", err)
		return nil
	}
	return fw
}

func (w *Watcher) logger() *slog.Logger {
	if w.cfg.Logger != nil {
		return w.cfg.Logger
	}
	return slog.Default()
}

// stat reports false while the file is missing, e.g. during an editor's
// write-rename.
func (w *Watcher) stat() (fileState, bool) {
	info, err := os.Stat(w.cfg.ConfigPath)
	if err != nil {
		return fileState{}, false
	}
	return fileState{modTime: info.ModTime(), size: info.Size()}, true
}
