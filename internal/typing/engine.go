package typing

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the engine clock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// Engine drives a single typing test. It is not safe for concurrent use; one
// engine belongs to one test run.
type Engine struct {
	session Session
	clock   Clock
}

// NewEngine returns an engine for the reference text.
func NewEngine(reference string, opts ...Option) *Engine {
	e := &Engine{
		session: NewSession(reference),
		clock:   SystemClock,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a new attempt, discarding any previous progress.
func (e *Engine) Start() {
	e.session = e.session.Start(e.clock.Now())
}

// AddChar records a keystroke and reports whether it completed the test.
// It returns false when the test is not running.
func (e *Engine) AddChar(ch rune) bool {
	next, done := e.session.Add(ch, e.clock.Now())
	e.session = next
	return done
}

// RemoveChar deletes the last typed character.
func (e *Engine) RemoveChar() {
	e.session = e.session.Remove()
}

// Finish stops the test and returns its result. Further calls return the same result.
func (e *Engine) Finish() Result {
	now := e.clock.Now()
	e.session = e.session.Finish(now)
	return e.session.Result(now)
}

// Result returns the current result without finishing.
func (e *Engine) Result() Result {
	return e.session.Result(e.clock.Now())
}

// Progress returns live completion metrics.
func (e *Engine) Progress() Progress {
	return e.session.Progress(e.clock.Now())
}

// Lines returns the classified reference text wrapped to width.
func (e *Engine) Lines(width int) []Line {
	return e.session.Lines(width)
}

// Active reports whether the test accepts input.
func (e *Engine) Active() bool {
	return e.session.Active()
}

// Session returns a snapshot of the current state.
func (e *Engine) Session() Session {
	return e.session
}
