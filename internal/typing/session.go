// Package typing implements typing test sessions and their scoring.
package typing

import "time"

// Session is an immutable snapshot of a typing test. Transitions return a new
// Session and never modify the receiver.
type Session struct {
	reference  []rune
	typed      []rune
	errors     int
	startedAt  time.Time
	finishedAt time.Time
}

// NewSession returns a session for the given reference text. It is not started.
func NewSession(reference string) Session {
	return Session{reference: []rune(reference)}
}

// Start begins (or restarts) the session at now, discarding any progress.
// A session with an empty reference has nothing to type and finishes immediately.
func (s Session) Start(now time.Time) Session {
	next := Session{
		reference: s.reference,
		startedAt: now,
	}
	if len(next.reference) == 0 {
		next.finishedAt = now
	}
	return next
}

// Add appends ch to the typed text. The returned flag reports whether the
// session completed with this character. Inactive sessions are returned unchanged.
func (s Session) Add(ch rune, now time.Time) (Session, bool) {
	if !s.Active() || len(s.typed) >= len(s.reference) {
		return s, false
	}
	next := s
	next.typed = make([]rune, len(s.typed)+1)
	copy(next.typed, s.typed)
	pos := len(s.typed)
	next.typed[pos] = ch
	if next.reference[pos] != ch {
		next.errors++
	}
	if len(next.typed) == len(next.reference) {
		return next.Finish(now), true
	}
	return next, false
}

// Remove drops the last typed character. Recorded errors are kept.
func (s Session) Remove() Session {
	if !s.Active() || len(s.typed) == 0 {
		return s
	}
	next := s
	next.typed = s.typed[: len(s.typed)-1 : len(s.typed)-1]
	return next
}

// Finish ends the session at now. Only the first call records the end time,
// so repeated calls keep the result stable. Sessions that never started stay
// unstarted.
func (s Session) Finish(now time.Time) Session {
	if s.startedAt.IsZero() || !s.finishedAt.IsZero() {
		return s
	}
	next := s
	if now.Before(s.startedAt) {
		now = s.startedAt
	}
	next.finishedAt = now
	return next
}

// Active reports whether the session accepts input.
func (s Session) Active() bool {
	return !s.startedAt.IsZero() && s.finishedAt.IsZero()
}

// Started reports whether Start has been called.
func (s Session) Started() bool {
	return !s.startedAt.IsZero()
}

// Finished reports whether the session has ended.
func (s Session) Finished() bool {
	return !s.finishedAt.IsZero()
}

// Reference returns the text to reproduce.
func (s Session) Reference() string {
	return string(s.reference)
}

// Typed returns the characters entered so far.
func (s Session) Typed() string {
	return string(s.typed)
}

// Len returns the reference length in characters.
func (s Session) Len() int {
	return len(s.reference)
}

// TypedLen returns the number of typed characters.
func (s Session) TypedLen() int {
	return len(s.typed)
}

// ErrorCount returns the number of mistyped keystrokes, including corrected ones.
func (s Session) ErrorCount() int {
	return s.errors
}

// StartedAt returns the start time, zero if not started.
func (s Session) StartedAt() time.Time {
	return s.startedAt
}

// FinishedAt returns the end time, zero while running.
func (s Session) FinishedAt() time.Time {
	return s.finishedAt
}

// State classifies the reference character at index i against the typed text.
func (s Session) State(i int) CharState {
	switch {
	case i < len(s.typed):
		if i < len(s.reference) && s.typed[i] == s.reference[i] {
			return StateCorrect
		}
		return StateIncorrect
	case i == len(s.typed):
		return StateCurrent
	default:
		return StatePending
	}
}

func (s Session) correctChars() int {
	correct := 0
	for i, r := range s.typed {
		if i < len(s.reference) && r == s.reference[i] {
			correct++
		}
	}
	return correct
}
