// Package session implements the typing round state machine.
package session

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a session is created with an empty target
// or a non-positive duration.
var ErrInvalidConfig = errors.New("invalid session config")

// State is an immutable snapshot of a session.
type State struct {
	Target   string
	Input    string
	TimeLeft int
	Success  bool
	GameOver bool
}

type subscriber struct {
	id int
	fn func(State)
}

// Engine holds the authoritative state of one typing round.
// It is not safe for concurrent use; one driver applies all mutations.
type Engine struct {
	state  State
	subs   []subscriber
	nextID int
}

// New creates an engine for target with duration seconds on the clock.
func New(target string, duration int) (*Engine, error) {
	st, err := freshState(target, duration)
	if err != nil {
		return nil, err
	}
	return &Engine{state: st}, nil
}

func freshState(target string, duration int) (State, error) {
	if target == "" {
		return State{}, fmt.Errorf("%w: target text is empty", ErrInvalidConfig)
	}
	if duration <= 0 {
		return State{}, fmt.Errorf("%w: duration must be > 0, got %d", ErrInvalidConfig, duration)
	}
	return State{Target: target, TimeLeft: duration}, nil
}

// State returns the latest snapshot.
func (e *Engine) State() State {
	return e.state
}

// Input replaces the accumulated input. Input after game over is ignored.
func (e *Engine) Input(input string) State {
	if e.state.GameOver {
		return e.state
	}
	e.state.Input = input
	if input == e.state.Target {
		e.state.Success = true
		e.state.GameOver = true
	}
	e.publish()
	return e.state
}

// Tick takes one second off the clock and ends the round when it runs out.
func (e *Engine) Tick() State {
	if e.state.GameOver {
		return e.state
	}
	if e.state.TimeLeft > 0 {
		e.state.TimeLeft--
	}
	if e.state.TimeLeft == 0 {
		e.state.GameOver = true
	}
	e.publish()
	return e.state
}

// Restart replaces the state with a fresh round. On error the current state
// is kept. The caller stops any countdown feeding Tick before restarting.
func (e *Engine) Restart(target string, duration int) (State, error) {
	st, err := freshState(target, duration)
	if err != nil {
		return e.state, err
	}
	e.state = st
	e.publish()
	return e.state, nil
}

// Subscribe registers fn to receive every snapshot produced by a mutator.
// The returned func removes the subscription.
func (e *Engine) Subscribe(fn func(State)) func() {
	id := e.nextID
	e.nextID++
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) publish() {
	st := e.state
	for _, s := range e.subs {
		s.fn(st)
	}
}
