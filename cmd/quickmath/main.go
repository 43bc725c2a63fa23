package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"quickmath/internal/config"
	"quickmath/internal/controllers"
	"quickmath/internal/engine"
	"quickmath/internal/logger"
	"quickmath/internal/models"
	"quickmath/internal/services"
	"quickmath/internal/shutdown"
	"quickmath/internal/store"
	"quickmath/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

const (
	AppName    = "QuickMath"
	AppID      = "io.quickmath.app"
	AppVersion = "1.0.0"
)

func main() {
	// Optional .env for LOG_LEVEL and QUICKMATH_* overrides.
	_ = godotenv.Load()

	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger.Info("application starting", map[string]interface{}{
		"version":             AppVersion,
		"questions_per_round": cfg.Game.QuestionsPerRound,
		"round_seconds":       cfg.Game.RoundSeconds,
		"countdown_seconds":   cfg.Game.CountdownSeconds,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(420, 640))
	window.CenterOnScreen()

	history, err := store.Open(cfg.History.DatabasePath)
	if err != nil {
		log.Fatalf("History store initialization failed: %v", err)
	}

	clock := clockwork.NewRealClock()
	generator := models.NewQuestionGenerator(rand.NewSource(time.Now().UnixNano()))
	gameEngine := engine.New(clock, generator, engine.Settings{
		QuestionCount:    cfg.Game.QuestionsPerRound,
		RoundDuration:    cfg.RoundDuration(),
		CountdownSeconds: cfg.Game.CountdownSeconds,
	})

	gameService := services.NewGameService(clock, gameEngine, cfg.TickInterval(),
		history, cfg.History.RecentLimit, appLogger.WithComponent("game"))
	settingsRepo := models.NewSettingsRepository(fyneApp.Preferences())
	settingsService := services.NewSettingsService(settingsRepo, appLogger.WithComponent("settings"))

	mainController := controllers.NewMainController(gameService, settingsService,
		appLogger.WithComponent("controller"))
	mainView := views.NewMainView(window, AppVersion)
	mainController.SetMainView(mainView)

	// Teardown order: controller, game service, then the history store.
	manager := shutdown.NewManager(appLogger.WithComponent("shutdown"))
	manager.RegisterFunc("history store", func() {
		if err := history.Close(); err != nil {
			appLogger.Error("history store close failed", err, nil)
		}
	})
	manager.Register("game service", gameService)
	manager.Register("controller", mainController)
	manager.Listen()

	gameService.Start(manager.Context())
	mainController.Initialize()

	// A shutdown triggered by signal must also stop the UI loop.
	go func() {
		<-manager.Done()
		fyne.Do(func() {
			fyneApp.Quit()
		})
	}()

	window.SetOnClosed(func() {
		appLogger.Info("window closed", nil)
	})

	mainView.Show()
	fyneApp.Run()

	manager.Shutdown()
	appLogger.Info("application terminated", nil)
}

func configPath() string {
	if path := os.Getenv("QUICKMATH_CONFIG"); path != "" {
		return path
	}
	return "quickmath.yaml"
}
