package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Persistence.Watch when a day file changes on disk.
// Day is empty when the change could not be attributed to a single day and
// callers should refresh their full view.
type Event struct {
	Day string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; a subsequent
				// refresh picks the change up and keeps filesystem storms
				// from blocking the watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep clients
				// in sync even if we cannot classify the change precisely.
				throttle.Enqueue(Event{}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Day: p.dayForPath(evt.Name)}, send)
			}
		}
	}()

	return events, nil
}

// dayForPath derives the day key from a diskv file path, or "" when the path
// is not a day file.
func (p *persistence) dayForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	if !strings.HasSuffix(rel, fileExt) {
		return ""
	}
	return strings.TrimSuffix(rel, fileExt)
}

// eventThrottle coalesces rapid change notifications so a consumer redraws
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Day] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for day := range pending {
		send(Event{Day: day})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
