package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Editors often write a file in several steps
const watchDebounce = 100 * time.Millisecond

// watchFile calls run once, then again every time path is written or
// recreated, until an interrupt is received.
func watchFile(path string, run func() int) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory so renames done by editors are seen
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	return watchLoop(abs, watcher.Events, watcher.Errors, interrupt, run)
}

func watchLoop(abs string, events <-chan fsnotify.Event, errs <-chan error, stop <-chan os.Signal, run func() int) error {
	log := logrus.WithField("path", abs)
	log.WithField("status", run()).Debug("initial run")

	var debounce <-chan time.Time
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				debounce = time.After(watchDebounce)
			}
		case <-debounce:
			debounce = nil
			log.Info("script changed, running again")
			log.WithField("status", run()).Debug("run finished")
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		case <-stop:
			return nil
		}
	}
}
