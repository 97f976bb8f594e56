package typing

// Level grades a feedback note.
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
)

// Note is a single line of feedback on a result.
type Note struct {
	Level   Level
	Message string
}

const accuracyTarget = 90

// Assess grades the speed of a result and warns about low accuracy.
func Assess(r Result) []Note {
	var notes []Note
	switch {
	case r.WPM >= 80:
		notes = append(notes, Note{Level: LevelSuccess, Message: "Excellent! You're a typing master! 🏆"})
	case r.WPM >= 60:
		notes = append(notes, Note{Level: LevelSuccess, Message: "Great job! Above average typing speed! 🎉"})
	case r.WPM >= 40:
		notes = append(notes, Note{Level: LevelInfo, Message: "Good typing speed! Keep practicing! 👍"})
	default:
		notes = append(notes, Note{Level: LevelWarning, Message: "Keep practicing to improve your speed! 💪"})
	}
	if r.Accuracy < accuracyTarget {
		notes = append(notes, Note{Level: LevelWarning, Message: "Focus on accuracy - it's better to type slower but more accurately!"})
	}
	return notes
}
