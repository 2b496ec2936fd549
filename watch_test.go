package datesort_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcomo/datesort"
)

type chanListener chan struct{}

func (l chanListener) OnChange() error {
	select {
	case l <- struct{}{}:
	default:
	}
	return nil
}

func TestStartWatching(t *testing.T) {
	dir := t.TempDir()
	l := make(chanListener, 1)

	closer, err := datesort.StartWatching([]string{dir}, l)
	require.NoError(t, err)
	defer closer.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dates.txt"), []byte("2005-01-01\n"), 0644))

	select {
	case <-l:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change notification")
	}
}

type slowListener struct {
	started  chan struct{}
	finished atomic.Bool
}

func (l *slowListener) OnChange() error {
	select {
	case l.started <- struct{}{}:
	default:
	}
	time.Sleep(200 * time.Millisecond)
	l.finished.Store(true)
	return nil
}

func TestStartWatchingCloseWaits(t *testing.T) {
	dir := t.TempDir()
	l := &slowListener{started: make(chan struct{}, 1)}

	closer, err := datesort.StartWatching([]string{dir}, l)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dates.txt"), []byte("2005-01-01\n"), 0644))

	select {
	case <-l.started:
	case <-time.After(5 * time.Second):
		closer.Close()
		t.Fatal("timed out waiting for a change notification")
	}

	require.NoError(t, closer.Close())
	assert.True(t, l.finished.Load(), "Close returned while OnChange was running")
	assert.NoError(t, closer.Close())
}

func TestStartWatchingMissingDir(t *testing.T) {
	_, err := datesort.StartWatching([]string{filepath.Join(t.TempDir(), "missing")}, make(chanListener, 1))
	assert.Error(t, err)
}
