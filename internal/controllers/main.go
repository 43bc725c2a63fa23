package controllers

import (
	"errors"

	"quickmath/internal/engine"
	"quickmath/internal/logger"
	"quickmath/internal/models"
	"quickmath/internal/services"
	"quickmath/internal/store"
	"quickmath/internal/views"
)

// MainController connects the view's events to the game and settings
// services and pushes state updates back into the view.
type MainController struct {
	gameService     *services.GameService
	settingsService *services.SettingsService
	log             logger.Logger

	view *views.MainView
}

// NewMainController creates the controller for the given services.
func NewMainController(gameService *services.GameService,
	settingsService *services.SettingsService, log logger.Logger) *MainController {

	return &MainController{
		gameService:     gameService,
		settingsService: settingsService,
		log:             log,
	}
}

// SetMainView attaches the view and wires every event handler.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.view = view

	view.Home().SetPlayHandler(mc.handlePlay)
	view.Game().SetStartHandler(mc.handleStartRound)
	view.Game().SetDigitHandler(mc.handleDigit)
	view.Game().SetClearHandler(mc.handleClear)
	view.Game().SetPlayAgainHandler(mc.handleStartRound)
	view.Game().SetHomeHandler(mc.handleGoHome)
	view.Settings().SetDarkModeHandler(mc.handleDarkModeChange)
	view.SetTabChangeHandler(mc.handleTabChange)

	mc.gameService.SetUpdateHandler(func(snap engine.Snapshot) {
		view.UpdateGame(snap)
	})
	mc.gameService.SetFinishedHandler(mc.handleRoundFinished)
}

// Initialize applies persisted settings and primes the view. Called once
// before the window is shown.
func (mc *MainController) Initialize() {
	mc.view.ApplyAppearance(mc.settingsService.DarkMode())
	mc.view.UpdateGame(mc.gameService.Snapshot())
	mc.refreshHome()
}

// Shutdown releases controller resources.
func (mc *MainController) Shutdown() {
	mc.log.Debug("controller shutdown", nil)
}

func (mc *MainController) handlePlay() {
	mc.view.ShowGameTab()
	mc.handleStartRound()
}

func (mc *MainController) handleStartRound() {
	mc.gameService.StartRound()
	mc.view.UpdateStatus("Round in progress")
}

func (mc *MainController) handleDigit(digit rune) {
	mc.gameService.SubmitDigit(digit)
}

func (mc *MainController) handleClear() {
	mc.gameService.ClearInput()
}

func (mc *MainController) handleGoHome() {
	mc.view.ShowHomeTab()
}

func (mc *MainController) handleRoundFinished(result models.RoundResult) {
	mc.view.ShowRoundResult(result)
	mc.view.UpdateStatus("Round finished")
	mc.refreshHome()
}

// handleTabChange abandons an in-flight round when the player navigates away
// from the Game tab; leaving mid-round discards the round without recording.
func (mc *MainController) handleTabChange(name string) {
	if name == "Game" {
		return
	}

	phase := mc.gameService.Snapshot().Phase
	if phase == models.PhaseCountdown || phase == models.PhasePlaying {
		mc.gameService.AbandonRound()
		mc.view.UpdateStatus("Round abandoned")
	}
}

func (mc *MainController) handleDarkModeChange(enabled bool) {
	mc.settingsService.SetDarkMode(enabled)
	mc.view.ApplyAppearance(enabled)
}

// refreshHome reloads the history summary shown on the home tab.
func (mc *MainController) refreshHome() {
	results, err := mc.gameService.RecentResults()
	if err != nil {
		mc.log.Error("failed to load round history", err, nil)
		mc.view.ShowError(err)
		return
	}

	best, err := mc.gameService.BestTime()
	hasBest := err == nil
	if err != nil && !errors.Is(err, store.ErrNoCompletedRounds) {
		mc.log.Error("failed to load best time", err, nil)
	}

	mc.view.UpdateHome(results, best, hasBest)
}
