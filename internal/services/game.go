package services

import (
	"context"
	"time"

	"quickmath/internal/engine"
	"quickmath/internal/logger"
	"quickmath/internal/models"
	"quickmath/internal/store"

	"github.com/jonboulle/clockwork"
)

// GameService orchestrates the quiz engine, its tick source and the round
// history store. The controller talks to this service, never to the engine
// directly.
type GameService struct {
	engine  *engine.Engine
	ticker  *engine.Ticker
	history *store.HistoryStore
	log     logger.Logger

	recentLimit int

	onUpdate   func(engine.Snapshot)
	onFinished func(models.RoundResult)

	cancel context.CancelFunc
}

// NewGameService wires the engine to its tick source and history store.
func NewGameService(clock clockwork.Clock, gameEngine *engine.Engine, tickInterval time.Duration,
	history *store.HistoryStore, recentLimit int, log logger.Logger) *GameService {

	gs := &GameService{
		engine:      gameEngine,
		history:     history,
		log:         log,
		recentLimit: recentLimit,
	}

	gameEngine.SetFinishedHandler(gs.handleFinished)
	gs.ticker = engine.NewTicker(clock, tickInterval, gameEngine, func(snap engine.Snapshot) {
		gs.publish(snap)
	})

	return gs
}

// Start launches the tick loop. The loop is permanent for the lifetime of the
// app; ticks outside an active round are no-ops in the engine.
func (gs *GameService) Start(ctx context.Context) {
	tickCtx, cancel := context.WithCancel(ctx)
	gs.cancel = cancel
	go gs.ticker.Start(tickCtx)

	gs.log.Info("game service started", map[string]interface{}{
		"recent_limit": gs.recentLimit,
	})
}

// Shutdown stops the tick loop.
func (gs *GameService) Shutdown() {
	if gs.cancel != nil {
		gs.cancel()
	}
	gs.log.Info("game service stopped", nil)
}

// SetUpdateHandler registers the callback receiving a snapshot after every
// tick and input event. The handler runs off the UI thread; the controller
// wraps it in fyne.Do.
func (gs *GameService) SetUpdateHandler(handler func(engine.Snapshot)) {
	gs.onUpdate = handler
}

// SetFinishedHandler registers the callback receiving the persisted result of
// every finished round.
func (gs *GameService) SetFinishedHandler(handler func(models.RoundResult)) {
	gs.onFinished = handler
}

// StartRound begins a new round.
func (gs *GameService) StartRound() {
	gs.engine.StartRound()
	snap := gs.engine.Snapshot()

	gs.log.Info("round started", map[string]interface{}{
		"questions": snap.QuestionCount,
	})
	gs.publish(snap)
}

// AbandonRound discards the in-flight round without recording anything.
func (gs *GameService) AbandonRound() {
	gs.engine.Reset()
	gs.log.Debug("round abandoned", nil)
	gs.publish(gs.engine.Snapshot())
}

// SubmitDigit forwards one keypad digit to the engine.
func (gs *GameService) SubmitDigit(digit rune) {
	gs.engine.SubmitDigit(digit)
	gs.publish(gs.engine.Snapshot())
}

// ClearInput clears the answer buffer.
func (gs *GameService) ClearInput() {
	gs.engine.ClearInput()
	gs.publish(gs.engine.Snapshot())
}

// Snapshot returns the engine's current display state.
func (gs *GameService) Snapshot() engine.Snapshot {
	return gs.engine.Snapshot()
}

// RecentResults returns the most recent recorded rounds for the home screen.
func (gs *GameService) RecentResults() ([]models.RoundResult, error) {
	return gs.history.Recent(gs.recentLimit)
}

// BestTime returns the fastest completed round, or store.ErrNoCompletedRounds.
func (gs *GameService) BestTime() (time.Duration, error) {
	return gs.history.BestElapsed()
}

// handleFinished persists the finished round and fans the result out to the
// UI. Runs on the engine's finish goroutine, not the UI thread.
func (gs *GameService) handleFinished(result models.RoundResult) {
	saved, err := gs.history.Save(result)
	if err != nil {
		gs.log.Error("failed to record round", err, map[string]interface{}{
			"completed": result.Completed,
		})
		saved = result
	}

	gs.log.Info("round finished", map[string]interface{}{
		"completed":  saved.Completed,
		"answered":   saved.QuestionsAnswered,
		"elapsed_ms": saved.Elapsed.Milliseconds(),
	})

	if gs.onFinished != nil {
		gs.onFinished(saved)
	}
}

func (gs *GameService) publish(snap engine.Snapshot) {
	if gs.onUpdate != nil {
		gs.onUpdate(snap)
	}
}
