package engine

import (
	"math/rand"
	"testing"
	"time"

	"quickmath/internal/models"

	"github.com/jonboulle/clockwork"
)

func newTestEngine(t *testing.T, settings Settings) (*Engine, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	gen := models.NewQuestionGenerator(rand.NewSource(1))
	return New(clock, gen, settings), clock
}

func defaultSettings() Settings {
	return Settings{
		QuestionCount:    3,
		RoundDuration:    60 * time.Second,
		CountdownSeconds: 5,
	}
}

// advanceToPlaying runs the countdown to completion.
func advanceToPlaying(t *testing.T, e *Engine, clock *clockwork.FakeClock, countdownSeconds int) {
	t.Helper()
	for i := 0; i < countdownSeconds; i++ {
		clock.Advance(time.Second)
		e.Tick()
	}
	if phase := e.Snapshot().Phase; phase != models.PhasePlaying {
		t.Fatalf("expected Playing after countdown, got %s", phase)
	}
}

// setQuestions swaps in a fixed question set mid-round so answer sequences
// are predictable.
func setQuestions(e *Engine, questions []models.Question) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.questions = questions
	e.currentIndex = 0
	e.input = ""
}

func submitAnswer(e *Engine, answer string) {
	for _, digit := range answer {
		e.SubmitDigit(digit)
	}
}

func TestStartRoundEntersCountdown(t *testing.T) {
	e, _ := newTestEngine(t, defaultSettings())

	if phase := e.Snapshot().Phase; phase != models.PhaseIdle {
		t.Fatalf("expected Idle before first round, got %s", phase)
	}

	e.StartRound()
	snap := e.Snapshot()

	if snap.Phase != models.PhaseCountdown {
		t.Errorf("expected Countdown, got %s", snap.Phase)
	}
	if snap.CountdownRemaining != 5 {
		t.Errorf("expected countdown 5, got %d", snap.CountdownRemaining)
	}
	if snap.QuestionCount != 3 {
		t.Errorf("expected 3 questions, got %d", snap.QuestionCount)
	}
	if snap.QuestionIndex != 0 {
		t.Errorf("expected index 0, got %d", snap.QuestionIndex)
	}
}

func TestCountdownTransitionsToPlaying(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()

	for i := 0; i < 4; i++ {
		clock.Advance(time.Second)
		e.Tick()
		if phase := e.Snapshot().Phase; phase != models.PhaseCountdown {
			t.Fatalf("tick %d: expected Countdown, got %s", i+1, phase)
		}
	}

	clock.Advance(time.Second)
	e.Tick()

	snap := e.Snapshot()
	if snap.Phase != models.PhasePlaying {
		t.Fatalf("expected Playing after 5 ticks, got %s", snap.Phase)
	}
	if snap.TimeRemaining != 60*time.Second {
		t.Errorf("expected full round time remaining, got %v", snap.TimeRemaining)
	}
	if snap.QuestionText == "" {
		t.Error("expected a question to be shown in Playing")
	}
}

func TestRoundTimesOut(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	clock.Advance(60 * time.Second)
	e.Tick()

	snap := e.Snapshot()
	if snap.Phase != models.PhaseFinished {
		t.Fatalf("expected Finished after round timeout, got %s", snap.Phase)
	}
	if snap.Elapsed != 60*time.Second {
		t.Errorf("expected elapsed to equal round duration, got %v", snap.Elapsed)
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	setQuestions(e, []models.Question{
		{Text: "3 × 4 = ?", Answer: 12},
		{Text: "5 + 5 = ?", Answer: 10},
	})

	e.SubmitDigit('1')
	snap := e.Snapshot()
	if snap.Input != "1" {
		t.Errorf("expected buffered input %q, got %q", "1", snap.Input)
	}
	if snap.QuestionIndex != 0 {
		t.Errorf("partial input must not advance, index = %d", snap.QuestionIndex)
	}

	e.SubmitDigit('2')
	snap = e.Snapshot()
	if snap.QuestionIndex != 1 {
		t.Errorf("expected advance to question 1, got %d", snap.QuestionIndex)
	}
	if snap.Input != "" {
		t.Errorf("expected input cleared after answer, got %q", snap.Input)
	}
	if snap.Incorrect {
		t.Error("correct answer must not raise the incorrect flag")
	}
}

func TestIncorrectAnswerClearsInput(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	setQuestions(e, []models.Question{
		{Text: "3 × 4 = ?", Answer: 12},
	})

	e.SubmitDigit('1')
	e.SubmitDigit('3')

	snap := e.Snapshot()
	if !snap.Incorrect {
		t.Error("expected incorrect flag after wrong answer")
	}
	if snap.Input != "" {
		t.Errorf("expected input cleared after wrong answer, got %q", snap.Input)
	}
	if snap.QuestionIndex != 0 {
		t.Errorf("wrong answer must not advance, index = %d", snap.QuestionIndex)
	}

	// The flag is transient: the next digit clears it.
	e.SubmitDigit('1')
	if snap := e.Snapshot(); snap.Incorrect {
		t.Error("expected incorrect flag cleared by next digit")
	}
}

func TestAnsweringLastQuestionFinishes(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	setQuestions(e, []models.Question{
		{Text: "2 + 2 = ?", Answer: 4},
		{Text: "9 − 2 = ?", Answer: 7},
	})

	clock.Advance(10 * time.Second)
	e.Tick()

	submitAnswer(e, "4")
	submitAnswer(e, "7")

	snap := e.Snapshot()
	if snap.Phase != models.PhaseFinished {
		t.Fatalf("expected Finished after last answer, got %s", snap.Phase)
	}
	if snap.Elapsed != 10*time.Second {
		t.Errorf("expected elapsed 10s, got %v", snap.Elapsed)
	}
}

func TestElapsedNeverExceedsRoundDuration(t *testing.T) {
	settings := defaultSettings()
	e, clock := newTestEngine(t, settings)
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	setQuestions(e, []models.Question{{Text: "2 + 2 = ?", Answer: 4}})

	// Finish just past the deadline without an intervening tick.
	clock.Advance(61 * time.Second)
	submitAnswer(e, "4")

	snap := e.Snapshot()
	if snap.Phase != models.PhaseFinished {
		t.Fatalf("expected Finished, got %s", snap.Phase)
	}
	if snap.Elapsed > settings.RoundDuration {
		t.Errorf("elapsed %v exceeds round duration %v", snap.Elapsed, settings.RoundDuration)
	}
}

func TestInputIgnoredOutsidePlaying(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())

	// Idle
	e.SubmitDigit('1')
	if snap := e.Snapshot(); snap.Input != "" {
		t.Errorf("idle: expected no input buffered, got %q", snap.Input)
	}

	// Countdown
	e.StartRound()
	e.SubmitDigit('1')
	e.ClearInput()
	if snap := e.Snapshot(); snap.Input != "" || snap.Phase != models.PhaseCountdown {
		t.Errorf("countdown: expected no-op, got input %q phase %s", snap.Input, snap.Phase)
	}

	// Finished
	advanceToPlaying(t, e, clock, 5)
	clock.Advance(60 * time.Second)
	e.Tick()
	e.SubmitDigit('1')
	if snap := e.Snapshot(); snap.Phase != models.PhaseFinished || snap.Input != "" {
		t.Errorf("finished: expected no-op, got input %q phase %s", snap.Input, snap.Phase)
	}
}

func TestNonDigitInputIgnored(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	e.SubmitDigit('a')
	e.SubmitDigit('-')
	if snap := e.Snapshot(); snap.Input != "" {
		t.Errorf("expected non-digit input rejected, got %q", snap.Input)
	}
}

func TestClearInput(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	setQuestions(e, []models.Question{{Text: "3 × 4 = ?", Answer: 12}})

	e.SubmitDigit('1')
	e.ClearInput()

	snap := e.Snapshot()
	if snap.Input != "" {
		t.Errorf("expected input cleared, got %q", snap.Input)
	}
	if snap.Incorrect {
		t.Error("expected incorrect flag cleared")
	}
}

func TestStartRoundResetsFromFinished(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)
	clock.Advance(60 * time.Second)
	e.Tick()

	if phase := e.Snapshot().Phase; phase != models.PhaseFinished {
		t.Fatalf("setup: expected Finished, got %s", phase)
	}

	e.StartRound()
	snap := e.Snapshot()
	if snap.Phase != models.PhaseCountdown {
		t.Errorf("expected restart to enter Countdown, got %s", snap.Phase)
	}
	if snap.QuestionIndex != 0 {
		t.Errorf("expected index reset, got %d", snap.QuestionIndex)
	}
	if snap.Elapsed != 0 {
		t.Errorf("expected elapsed reset, got %v", snap.Elapsed)
	}
}

func TestResetAbandonsRound(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	finished := make(chan models.RoundResult, 1)
	e.SetFinishedHandler(func(result models.RoundResult) {
		finished <- result
	})

	e.Reset()
	if phase := e.Snapshot().Phase; phase != models.PhaseIdle {
		t.Errorf("expected Idle after reset, got %s", phase)
	}

	select {
	case <-finished:
		t.Error("abandoned round must not emit a result")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFinishedHandlerReceivesResult(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())

	finished := make(chan models.RoundResult, 1)
	e.SetFinishedHandler(func(result models.RoundResult) {
		finished <- result
	})

	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	setQuestions(e, []models.Question{{Text: "2 + 2 = ?", Answer: 4}})
	clock.Advance(12 * time.Second)
	submitAnswer(e, "4")

	select {
	case result := <-finished:
		if !result.Completed {
			t.Error("expected completed result")
		}
		if result.QuestionsAnswered != 1 {
			t.Errorf("expected 1 answered, got %d", result.QuestionsAnswered)
		}
		if result.Elapsed != 12*time.Second {
			t.Errorf("expected elapsed 12s, got %v", result.Elapsed)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for finished result")
	}
}

func TestTimeRemainingTracksWallClock(t *testing.T) {
	e, clock := newTestEngine(t, defaultSettings())
	e.StartRound()
	advanceToPlaying(t, e, clock, 5)

	// Coalesced ticks must not drift the timer: one late tick sees the
	// same remaining time as many on-time ticks would.
	clock.Advance(23 * time.Second)
	e.Tick()

	if snap := e.Snapshot(); snap.TimeRemaining != 37*time.Second {
		t.Errorf("expected 37s remaining, got %v", snap.TimeRemaining)
	}
}
