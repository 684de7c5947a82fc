// Package round drives a timed typing round: input editing, the countdown
// and final scoring.
package round

import (
	"sync"
	"time"
)

// Tick is one countdown step addressed to the round generation Gen.
type Tick struct {
	Gen uint64
}

// Countdown sends a Tick to its sink once per interval until stopped.
type Countdown struct {
	gen      uint64
	interval time.Duration
	sink     chan<- Tick

	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// StartCountdown starts a countdown for generation gen.
func StartCountdown(gen uint64, interval time.Duration, sink chan<- Tick) *Countdown {
	c := &Countdown{
		gen:      gen,
		interval: interval,
		sink:     sink,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *Countdown) run() {
	defer close(c.stopped)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			select {
			case c.sink <- Tick{Gen: c.gen}:
			case <-c.done:
				return
			}
		}
	}
}

// Stop cancels the countdown. No tick is sent once Stop has returned.
// Stop is idempotent.
func (c *Countdown) Stop() {
	c.once.Do(func() {
		close(c.done)
	})
	<-c.stopped
}
