package round

import (
	"errors"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// ErrRoundActive is returned when a result is requested before game over.
var ErrRoundActive = errors.New("round is still running")

const (
	defaultInterval = time.Second
	// Rounds that end faster than this are scored as if they took this long.
	minElapsed = time.Second
)

// Option configures a Round.
type Option func(*Round)

// WithClock overrides the wall clock used for elapsed time.
func WithClock(now func() time.Time) Option {
	return func(r *Round) {
		r.now = now
	}
}

// WithInterval overrides the countdown interval.
func WithInterval(d time.Duration) Option {
	return func(r *Round) {
		r.interval = d
	}
}

// WithLogger sets the logger for round lifecycle events.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Round) {
		r.log = log
	}
}

// Round owns one engine, its counters and its countdown. A restart swaps all
// three together. Round is not safe for concurrent use: one loop calls its
// methods and feeds it ticks read from Ticks.
type Round struct {
	now      func() time.Time
	interval time.Duration
	log      zerolog.Logger
	ticks    chan Tick

	id          uuid.UUID
	gen         uint64
	engine      *session.Engine
	counters    session.Counters
	countdown   *Countdown
	unsubscribe func()
	startedAt   time.Time
	endedAt     time.Time
}

// New starts a round on phrase with duration seconds on the clock.
func New(phrase string, duration int, opts ...Option) (*Round, error) {
	r := &Round{
		now:      time.Now,
		interval: defaultInterval,
		log:      zerolog.Nop(),
		ticks:    make(chan Tick, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	engine, err := session.New(phrase, duration)
	if err != nil {
		return nil, err
	}
	r.start(engine)
	return r, nil
}

// Restart replaces the round with a fresh one on phrase. The old countdown is
// stopped before the new engine takes over. On error the current round keeps
// running unchanged.
func (r *Round) Restart(phrase string, duration int) error {
	engine, err := session.New(phrase, duration)
	if err != nil {
		return err
	}
	r.stop()
	r.start(engine)
	return nil
}

func (r *Round) start(engine *session.Engine) {
	r.gen++
	r.id = uuid.New()
	r.engine = engine
	r.counters = session.Reduce(session.Counters{}, engine.State())
	r.unsubscribe = engine.Subscribe(r.observe)
	r.startedAt = r.now()
	r.endedAt = time.Time{}
	r.countdown = StartCountdown(r.gen, r.interval, r.ticks)
	st := engine.State()
	r.log.Debug().
		Str("round", r.id.String()).
		Uint64("gen", r.gen).
		Int("duration", st.TimeLeft).
		Bool("russian", r.counters.Russian).
		Msg("round started")
}

func (r *Round) stop() {
	if r.countdown != nil {
		r.countdown.Stop()
	}
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

func (r *Round) observe(st session.State) {
	r.counters = session.Reduce(r.counters, st)
	if st.GameOver && r.endedAt.IsZero() {
		r.endedAt = r.now()
		r.countdown.Stop()
		r.log.Info().
			Str("round", r.id.String()).
			Bool("success", st.Success).
			Int("correct", r.counters.Correct).
			Int("typed", r.counters.Total).
			Dur("elapsed", r.endedAt.Sub(r.startedAt)).
			Msg("round finished")
	}
}

// Close stops the countdown. The round must not be used afterwards.
func (r *Round) Close() {
	r.stop()
}

// Ticks delivers countdown ticks. The channel outlives restarts; ticks from
// earlier generations are dropped by Tick.
func (r *Round) Ticks() <-chan Tick {
	return r.ticks
}

// Tick applies t if it belongs to the live generation. It reports whether
// the tick was applied.
func (r *Round) Tick(t Tick) (session.State, bool) {
	if t.Gen != r.gen {
		return r.engine.State(), false
	}
	return r.engine.Tick(), true
}

// Type inserts ch at the cursor and advances it.
func (r *Round) Type(ch rune) session.State {
	st := r.engine.State()
	if st.GameOver {
		return st
	}
	pos := r.counters.Position
	if pos >= utf8.RuneCountInString(st.Target) {
		return st
	}
	input := []rune(st.Input)
	if pos >= len(input) {
		input = append(input, ch)
	} else {
		input = slices.Insert(input, pos, ch)
	}
	r.counters.Position++
	return r.engine.Input(string(input))
}

// Backspace moves the cursor back one rune and drops everything after it.
func (r *Round) Backspace() session.State {
	st := r.engine.State()
	if st.GameOver || r.counters.Position == 0 {
		return st
	}
	r.counters.Position--
	input := []rune(st.Input)
	if r.counters.Position < len(input) {
		input = input[:r.counters.Position]
	}
	return r.engine.Input(string(input))
}

// Result scores the finished round.
func (r *Round) Result() (stats.Result, error) {
	st := r.engine.State()
	if !st.GameOver {
		return stats.Result{}, ErrRoundActive
	}
	elapsed := r.Elapsed()
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	c := r.counters
	return stats.Compute(c.Correct, c.Total, utf8.RuneCountInString(st.Target), elapsed, c.Russian)
}

// State returns the latest snapshot.
func (r *Round) State() session.State {
	return r.engine.State()
}

// Counters returns the counters observed so far.
func (r *Round) Counters() session.Counters {
	return r.counters
}

// ID identifies the live round in logs.
func (r *Round) ID() uuid.UUID {
	return r.id
}

// Generation increments on every restart.
func (r *Round) Generation() uint64 {
	return r.gen
}

// Elapsed returns time spent in the round so far, or in total once over.
func (r *Round) Elapsed() time.Duration {
	if !r.endedAt.IsZero() {
		return r.endedAt.Sub(r.startedAt)
	}
	return r.now().Sub(r.startedAt)
}
