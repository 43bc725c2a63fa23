package models

import (
	"testing"
	"time"
)

func TestPhaseString(t *testing.T) {
	cases := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "Idle"},
		{PhaseCountdown, "Countdown"},
		{PhasePlaying, "Playing"},
		{PhaseFinished, "Finished"},
		{Phase(99), "Unknown"},
	}

	for _, tc := range cases {
		if got := tc.phase.String(); got != tc.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tc.phase, got, tc.want)
		}
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0s"},
		{1500 * time.Millisecond, "1.5s"},
		{12300 * time.Millisecond, "12.3s"},
		{59900 * time.Millisecond, "59.9s"},
		{60 * time.Second, "1:00.0"},
		{90500 * time.Millisecond, "1:30.5"},
		{-time.Second, "0.0s"},
	}

	for _, tc := range cases {
		if got := FormatElapsed(tc.d); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
