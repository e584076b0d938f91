package testbed

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/geom3/engine/containers"
	"github.com/spaghettifunk/geom3/engine/core"
)

// HistorySize is how many successful reports a Watcher remembers.
const HistorySize = 16

// Watcher re-runs a scene every time its file is written or replaced.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	handler  func(*Report, error)

	metrics *core.Metrics

	mutex   sync.RWMutex
	history *containers.RingQueue[*Report]
}

// NewWatcher watches the directory holding path, so editors that save by
// renaming a temporary file over the scene are picked up too.
func NewWatcher(path string, handler func(*Report, error)) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watcher needs a handler")
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	return &Watcher{
		path:     path,
		fsnotify: fsWatch,
		handler:  handler,
		metrics:  core.NewMetrics(),
		history:  containers.NewRingQueue[*Report](HistorySize),
	}, nil
}

// Run blocks until ctx is cancelled or the underlying watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsnotify.Close()

	core.LogInfo("watching %s for changes", w.path)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				core.LogDebug("scene %s changed (%s)", w.path, e.Op)
				w.rerun()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return nil
			}
			core.LogError(err.Error())

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) rerun() {
	report, err := Execute(w.path)
	if err == nil {
		w.metrics.Update(report.Elapsed)
		w.mutex.Lock()
		w.history.Push(report)
		w.mutex.Unlock()
		core.LogInfo("scene run #%d took %s (average %s)", w.metrics.Runs(), report.Elapsed, w.metrics.Average())
	}
	w.handler(report, err)
}

// History returns the most recent successful reports, oldest first.
func (w *Watcher) History() []*Report {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.history.Items()
}

func (w *Watcher) Metrics() *core.Metrics {
	return w.metrics
}
