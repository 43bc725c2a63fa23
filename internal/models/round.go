package models

import (
	"fmt"
	"time"
)

// Phase is the quiz engine's current state. A round moves one-directionally
// through Countdown, Playing and Finished; Idle is the pre-first-round state
// of a freshly created engine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseFinished
)

// String returns a display name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCountdown:
		return "Countdown"
	case PhasePlaying:
		return "Playing"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// RoundResult is the persisted outcome of a finished round.
type RoundResult struct {
	ID                string
	PlayedAt          time.Time
	QuestionsTotal    int
	QuestionsAnswered int
	Completed         bool
	Elapsed           time.Duration
}

// FormatElapsed renders a duration with tenth-of-a-second precision for the
// results and timer displays.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := d.Milliseconds() / 100
	minutes := tenths / 600
	seconds := (tenths / 10) % 60
	fraction := tenths % 10
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%d", minutes, seconds, fraction)
	}
	return fmt.Sprintf("%d.%ds", seconds, fraction)
}
