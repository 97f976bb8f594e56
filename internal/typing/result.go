package typing

import (
	"math"
	"time"
)

const charsPerWord = 5.0

// Result summarizes a typing session.
type Result struct {
	WPM             int
	Accuracy        int
	Errors          int
	CorrectChars    int
	TimeElapsed     int // seconds
	CharactersTyped int
	Elapsed         time.Duration
}

// Progress is the live view of a running session.
type Progress struct {
	Percent         int
	Total           int
	WPM             int
	Accuracy        int
	Errors          int
	CharactersTyped int
}

// Result computes the session result. The end time is the finish time, or now
// while the session is still running. A session that never started yields the
// zero Result.
func (s Session) Result(now time.Time) Result {
	if s.startedAt.IsZero() {
		return Result{}
	}
	end := s.finishedAt
	if end.IsZero() {
		end = now
	}
	elapsed := end.Sub(s.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := elapsed.Minutes()
	typed := len(s.typed)
	correct := s.correctChars()

	return Result{
		WPM:             wordsPerMinute(typed, minutes),
		Accuracy:        accuracy(correct, typed),
		Errors:          s.errors,
		CorrectChars:    correct,
		TimeElapsed:     roundInt(minutes * 60),
		CharactersTyped: typed,
		Elapsed:         elapsed,
	}
}

// Progress computes completion and live metrics at now.
func (s Session) Progress(now time.Time) Progress {
	res := s.Result(now)
	percent := 100
	if len(s.reference) > 0 {
		percent = roundInt(float64(len(s.typed)) / float64(len(s.reference)) * 100)
	}
	return Progress{
		Percent:         percent,
		Total:           len(s.reference),
		WPM:             res.WPM,
		Accuracy:        res.Accuracy,
		Errors:          res.Errors,
		CharactersTyped: len(s.typed),
	}
}

func wordsPerMinute(chars int, minutes float64) int {
	if minutes <= 0 {
		return 0
	}
	wpm := float64(chars) / charsPerWord / minutes
	if math.IsNaN(wpm) || math.IsInf(wpm, 0) {
		return 0
	}
	return roundInt(wpm)
}

func accuracy(correct, typed int) int {
	if typed == 0 {
		return 100
	}
	return roundInt(100 * float64(correct) / float64(typed))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
