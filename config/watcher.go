package config

import (
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads and re-validates a config file after writes,
// invoking a callback with the new Config. Write or create events that
// arrive within 200ms of each other are coalesced into one reload. A rejected reload is
// reported through the callback's error path; the file is left
// watched and the caller's own previous Config, held outside this
// package, is expected to be retained.
type Watcher struct {
	path string
	cb   func(*Config, error)

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
}

// Watch starts watching path and returns a *Watcher the caller must
// Close when done. cb is invoked from a timer goroutine once per
// coalesced burst of write events, whether or not the reload succeeded.
func Watch(path string, cb func(cfg *Config, err error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{path: path, cb: cb, fsWatcher: fw, done: make(chan struct{})}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher and releases its file descriptor.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	// Debounce rapid successive writes from editors that truncate then
	// rewrite a file.
	var timer *time.Timer
	reload := func() {
		cfg, err := Load(w.path)
		w.cb(cfg, err)
	}
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, reload)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("knuckleball: config watch error: %v", err)
		}
	}
}
