package datesort

import (
	"io"
	"log"

	"github.com/fsnotify/fsnotify"
)

type ChangeListener interface {
	OnChange() error
}

type watchCloser struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Close stops the watcher and waits for any OnChange call in progress.
func (c *watchCloser) Close() error {
	err := c.watcher.Close()
	<-c.done
	return err
}

// StartWatching calls l.OnChange after writes, creates and removes in
// dirs. Bursts of events collapse into one pending call. Once Close on
// the returned Closer returns, l.OnChange is no longer called.
func StartWatching(dirs []string, l ChangeListener) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		err = watcher.Add(dir)
		if err != nil {
			watcher.Close()
			return nil, err
		}
	}

	refresh := make(chan bool, 1)

	go func() {
		defer close(refresh)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				evs := fsnotify.Write | fsnotify.Create | fsnotify.Remove
				if event.Op&evs > 0 {
					select {
					case refresh <- true:
					default:
						// a refresh is already pending
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println("error:", err)
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range refresh {
			err := l.OnChange()
			if err != nil {
				log.Println(err)
			}
		}
	}()

	return &watchCloser{watcher: watcher, done: done}, nil
}
