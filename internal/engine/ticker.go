package engine

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Ticker is the periodic tick source driving the engine while a round is on
// screen. It knows nothing about questions or phases; it only delivers time.
type Ticker struct {
	clock    clockwork.Clock
	interval time.Duration
	engine   *Engine
	notify   func(Snapshot)
	stopChan chan struct{}
}

// NewTicker creates a tick source for the given engine. notify is called with
// a fresh snapshot after every tick; the caller is responsible for marshalling
// it onto the UI thread.
func NewTicker(clock clockwork.Clock, interval time.Duration, engine *Engine, notify func(Snapshot)) *Ticker {
	return &Ticker{
		clock:    clock,
		interval: interval,
		engine:   engine,
		notify:   notify,
		stopChan: make(chan struct{}),
	}
}

// Start runs the tick loop until the context is cancelled or Stop is called.
// Call in a goroutine.
func (t *Ticker) Start(ctx context.Context) {
	ticker := t.clock.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopChan:
			return
		case <-ticker.Chan():
			t.engine.Tick()
			if t.notify != nil {
				t.notify(t.engine.Snapshot())
			}
		}
	}
}

// Stop terminates the tick loop.
func (t *Ticker) Stop() {
	close(t.stopChan)
}
