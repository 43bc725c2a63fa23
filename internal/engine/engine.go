package engine

import (
	"math"
	"sync"
	"time"

	"quickmath/internal/models"

	"github.com/jonboulle/clockwork"
)

// Settings carries the per-round parameters the engine is created with.
type Settings struct {
	QuestionCount    int
	RoundDuration    time.Duration
	CountdownSeconds int
}

// Snapshot is an immutable copy of the engine's display state, taken for the
// UI on every tick and after every input event.
type Snapshot struct {
	Phase              models.Phase
	CountdownRemaining int
	TimeRemaining      time.Duration
	QuestionText       string
	QuestionIndex      int
	QuestionCount      int
	Input              string
	Incorrect          bool
	Elapsed            time.Duration
}

// Engine owns the quiz round state machine: Countdown → Playing → Finished,
// driven by periodic ticks and digit-entry events. All operations are total;
// events arriving in the wrong phase are ignored rather than failing.
//
// Remaining time is recomputed from the wall clock on each tick instead of
// decrementing counters, so a stalled or coalesced tick cannot drift the
// round timer.
type Engine struct {
	mu       sync.RWMutex
	clock    clockwork.Clock
	gen      *models.QuestionGenerator
	settings Settings

	phase          models.Phase
	countdownStart time.Time
	playStart      time.Time
	countdownLeft  int
	timeLeft       time.Duration
	questions      []models.Question
	currentIndex   int
	input          string
	incorrect      bool
	elapsed        time.Duration

	onFinished func(models.RoundResult)
}

// New creates an idle engine. The clock is injected so tests can drive time
// with a fake.
func New(clock clockwork.Clock, gen *models.QuestionGenerator, settings Settings) *Engine {
	return &Engine{
		clock:    clock,
		gen:      gen,
		settings: settings,
		phase:    models.PhaseIdle,
	}
}

// SetFinishedHandler registers a callback invoked once per round at the
// transition into Finished. The callback runs on its own goroutine.
func (e *Engine) SetFinishedHandler(handler func(models.RoundResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onFinished = handler
}

// StartRound begins a fresh round: generates the question set, resets every
// counter and enters Countdown. Valid in any phase; an in-flight round is
// discarded.
func (e *Engine) StartRound() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.questions = e.gen.Generate(e.settings.QuestionCount)
	e.currentIndex = 0
	e.input = ""
	e.incorrect = false
	e.elapsed = 0
	e.countdownLeft = e.settings.CountdownSeconds
	e.timeLeft = e.settings.RoundDuration
	e.countdownStart = e.clock.Now()
	e.phase = models.PhaseCountdown
}

// Reset abandons the current round and returns the engine to Idle. Nothing is
// recorded; used when the player navigates away mid-round.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.phase = models.PhaseIdle
	e.questions = nil
	e.input = ""
	e.incorrect = false
}

// Tick advances time-based state. In Countdown it recomputes the remaining
// whole seconds and enters Playing at zero; in Playing it recomputes the
// remaining round time and finishes the round at zero. No-op in Idle and
// Finished.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()

	switch e.phase {
	case models.PhaseCountdown:
		deadline := e.countdownStart.Add(time.Duration(e.settings.CountdownSeconds) * time.Second)
		left := deadline.Sub(now)
		if left <= 0 {
			e.playStart = now
			e.timeLeft = e.settings.RoundDuration
			e.phase = models.PhasePlaying
			return
		}
		e.countdownLeft = int(math.Ceil(left.Seconds()))

	case models.PhasePlaying:
		left := e.playStart.Add(e.settings.RoundDuration).Sub(now)
		if left <= 0 {
			e.timeLeft = 0
			e.finishLocked(false)
			return
		}
		e.timeLeft = left
	}
}

// SubmitDigit appends one digit to the input buffer; Playing phase only.
// Once the buffer reaches the length of the current answer it is checked:
// a match advances to the next question (or finishes the round on the last
// one), a mismatch raises the transient incorrect flag and clears the buffer
// for retry. The flag is cleared again on the next digit.
func (e *Engine) SubmitDigit(digit rune) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhasePlaying || digit < '0' || digit > '9' {
		return
	}

	e.incorrect = false
	e.input += string(digit)

	answer := e.questions[e.currentIndex].AnswerString()
	if len(e.input) < len(answer) {
		return
	}

	if e.input == answer {
		e.input = ""
		e.currentIndex++
		if e.currentIndex >= len(e.questions) {
			e.finishLocked(true)
		}
		return
	}

	e.incorrect = true
	e.input = ""
}

// ClearInput empties the input buffer and the incorrect flag; Playing only.
func (e *Engine) ClearInput() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhasePlaying {
		return
	}
	e.input = ""
	e.incorrect = false
}

// Snapshot returns a copy of the current display state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := Snapshot{
		Phase:              e.phase,
		CountdownRemaining: e.countdownLeft,
		TimeRemaining:      e.timeLeft,
		QuestionIndex:      e.currentIndex,
		QuestionCount:      len(e.questions),
		Input:              e.input,
		Incorrect:          e.incorrect,
		Elapsed:            e.elapsed,
	}
	if e.phase == models.PhasePlaying && e.currentIndex < len(e.questions) {
		snap.QuestionText = e.questions[e.currentIndex].Text
	}
	return snap
}

// finishLocked performs the Playing → Finished transition. The elapsed time
// is clamped to the configured round duration and written exactly once per
// round. Caller holds the lock.
func (e *Engine) finishLocked(completed bool) {
	elapsed := e.settings.RoundDuration
	if completed {
		elapsed = e.clock.Now().Sub(e.playStart)
		if elapsed > e.settings.RoundDuration {
			elapsed = e.settings.RoundDuration
		}
	}

	e.elapsed = elapsed
	e.phase = models.PhaseFinished

	if e.onFinished != nil {
		result := models.RoundResult{
			PlayedAt:          e.clock.Now(),
			QuestionsTotal:    len(e.questions),
			QuestionsAnswered: e.currentIndex,
			Completed:         completed,
			Elapsed:           elapsed,
		}
		handler := e.onFinished
		go handler(result)
	}
}
