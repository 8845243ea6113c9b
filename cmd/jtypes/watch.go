package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// runWatch runs the query file once and then again each time the query
// file or the universe file changes. It returns only if the watcher fails.
func runWatch(conf *config, filename string) int {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer w.Close()

	files := []string{filename}
	if conf.universe != "" {
		files = append(files, conf.universe)
	}
	// Editors often replace a file rather than write it in place, so
	// the directories are watched and events filtered by name.
	targets := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		targets[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			fmt.Fprintf(os.Stderr, "error: watch %s: %v\n", f, err)
			return 1
		}
	}

	runQueryFile(conf, filename)
	err = watchLoop(w.Events, w.Errors, nil, targets, func(name string) {
		log.Printf("%s changed, re-running %s", name, filename)
		runQueryFile(conf, filename)
	})
	fmt.Fprintf(os.Stderr, "error: watch: %v\n", err)
	return 1
}

// watchLoop calls rerun for every write or create of a file in
// targets until done is closed, events closes or errs delivers an error.
func watchLoop(events <-chan fsnotify.Event, errs <-chan error, done <-chan struct{},
	targets map[string]bool, rerun func(name string)) error {
	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("event stream closed")
			}
			if !isChange(ev) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !targets[name] {
				continue
			}
			rerun(ev.Name)
		case err, ok := <-errs:
			if !ok {
				return fmt.Errorf("error stream closed")
			}
			return err
		}
	}
}

func isChange(ev fsnotify.Event) bool {
	return ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}
