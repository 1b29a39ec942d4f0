package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"desk-calc/internal/logger"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads the config file when it changes on disk and hands the
// new value to onChange. The parent directory is watched so editors that
// replace the file by rename are picked up.
type Watcher struct {
	path     string
	onChange func(Config)
	log      logger.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once

	mu    sync.Mutex
	timer *time.Timer
	// pending counts reloads that are scheduled or running.
	pending sync.WaitGroup
}

// NewWatcher starts watching path.
func NewWatcher(path string, log logger.Logger, onChange func(Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		log:      log,
		debounce: defaultDebounce,
		watcher:  fw,
		done:     make(chan struct{}),
	}

	go w.loop()

	log.Debug("ConfigWatcher", "watching config", map[string]interface{}{
		"path": w.path,
	})
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("ConfigWatcher", err, map[string]interface{}{
				"path": w.path,
			})
		case <-w.done:
			return
		}
	}
}

// schedule coalesces bursts of events into one reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	w.stopTimer()
	w.pending.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.pending.Done()
		w.reload()
	})
}

// stopTimer cancels a scheduled reload that has not started yet. The
// caller holds mu.
func (w *Watcher) stopTimer() {
	if w.timer != nil && w.timer.Stop() {
		w.pending.Done()
	}
	w.timer = nil
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}

	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warning("ConfigWatcher", "reload failed, keeping current settings", map[string]interface{}{
			"path":  w.path,
			"error": err.Error(),
		})
		return
	}

	select {
	case <-w.done:
		return
	default:
	}

	w.log.Info("ConfigWatcher", "config reloaded", map[string]interface{}{
		"path":      w.path,
		"log_level": cfg.LogLevel,
		"theme":     cfg.Theme,
	})
	w.onChange(cfg)
}

// Shutdown stops the watcher and waits for a reload that is already
// running, so onChange is never called after Shutdown returns. It is safe
// to call more than once.
func (w *Watcher) Shutdown() {
	w.once.Do(func() {
		close(w.done)

		w.mu.Lock()
		w.stopTimer()
		w.mu.Unlock()

		if err := w.watcher.Close(); err != nil {
			w.log.Error("ConfigWatcher", err, nil)
		}
	})
	w.pending.Wait()
}
