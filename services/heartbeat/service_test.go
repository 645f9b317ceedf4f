package heartbeat

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type led struct {
	mu      sync.Mutex
	level   bool
	toggles int
}

func (l *led) Set(v bool) error {
	l.mu.Lock()
	if v != l.level {
		l.toggles++
	}
	l.level = v
	l.mu.Unlock()
	return nil
}

func (l *led) Get() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *led) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.toggles
}

// stopWatch closes done when the loop logs its exit.
type stopWatch struct{ done chan struct{} }

func (w stopWatch) Enabled(context.Context, slog.Level) bool { return true }
func (w stopWatch) WithAttrs([]slog.Attr) slog.Handler       { return w }
func (w stopWatch) WithGroup(string) slog.Handler            { return w }

func (w stopWatch) Handle(_ context.Context, r slog.Record) error {
	if r.Message == "heartbeat:stop" {
		close(w.done)
	}
	return nil
}

func TestBlinksUntilCancelled(t *testing.T) {
	l := &led{}
	w := stopWatch{done: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{LED: l, Logger: slog.New(w), Half: 5 * time.Millisecond}
	_ = s.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for l.count() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if l.count() < 4 {
		t.Fatalf("only %d toggles", l.count())
	}
	cancel()

	select {
	case <-w.done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after cancel")
	}
	if l.Get() {
		t.Fatal("LED left on after stop")
	}

	// No further writes once stopped.
	stopped := l.count()
	time.Sleep(10 * s.Half)
	if n := l.count(); n != stopped || l.Get() {
		t.Fatalf("LED kept changing after stop: %d toggles, was %d", n, stopped)
	}
}
