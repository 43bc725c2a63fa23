package views

import (
	"time"

	"quickmath/internal/engine"
	"quickmath/internal/models"
	"quickmath/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the tabbed application shell: Home, Game and Settings tabs plus
// a status bar. It owns no game logic; every event is forwarded to handlers
// installed by the controller.
type MainView struct {
	window fyne.Window

	mainContainer *fyne.Container
	tabs          *container.AppTabs
	homeTab       *container.TabItem
	gameTab       *container.TabItem
	settingsTab   *container.TabItem

	home     *components.HomeScreen
	game     *components.GameScreen
	settings *components.SettingsScreen
	status   *components.StatusBar

	tabChangeHandler func(name string)
}

// NewMainView creates the main view inside the given window.
func NewMainView(window fyne.Window, appVersion string) *MainView {
	mv := &MainView{
		window: window,
	}

	mv.initializeComponents(appVersion)
	mv.buildLayout()

	return mv
}

func (mv *MainView) initializeComponents(appVersion string) {
	mv.home = components.NewHomeScreen()
	mv.game = components.NewGameScreen()
	mv.settings = components.NewSettingsScreen(appVersion)
	mv.status = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.homeTab = container.NewTabItem("Home", mv.home.GetContainer())
	mv.gameTab = container.NewTabItem("Game", mv.game.GetContainer())
	mv.settingsTab = container.NewTabItem("Settings", mv.settings.GetContainer())

	mv.tabs = container.NewAppTabs(mv.homeTab, mv.gameTab, mv.settingsTab)
	mv.tabs.OnSelected = func(item *container.TabItem) {
		if mv.tabChangeHandler != nil {
			mv.tabChangeHandler(item.Text)
		}
	}

	mv.mainContainer = container.NewBorder(
		nil,                      // top
		mv.status.GetContainer(), // bottom
		nil,                      // left
		nil,                      // right
		mv.tabs,
	)

	mv.window.SetContent(mv.mainContainer)
}

// Handler wiring, called by the controller.

// SetTabChangeHandler sets the handler invoked with the tab name on every
// tab switch.
func (mv *MainView) SetTabChangeHandler(handler func(name string)) {
	mv.tabChangeHandler = handler
}

// Home returns the home tab component.
func (mv *MainView) Home() *components.HomeScreen {
	return mv.home
}

// Game returns the game tab component.
func (mv *MainView) Game() *components.GameScreen {
	return mv.game
}

// Settings returns the settings tab component.
func (mv *MainView) Settings() *components.SettingsScreen {
	return mv.settings
}

// UI update methods, called by the controller.

// ShowGameTab switches to the Game tab.
func (mv *MainView) ShowGameTab() {
	fyne.Do(func() {
		mv.tabs.Select(mv.gameTab)
	})
}

// ShowHomeTab switches to the Home tab.
func (mv *MainView) ShowHomeTab() {
	fyne.Do(func() {
		mv.tabs.Select(mv.homeTab)
	})
}

// UpdateGame renders an engine snapshot on the game screen and status bar.
func (mv *MainView) UpdateGame(snap engine.Snapshot) {
	fyne.Do(func() {
		mv.game.ApplySnapshot(snap)
		mv.status.SetPhase(snap.Phase.String())
	})
}

// ShowRoundResult fills the results view for a finished round.
func (mv *MainView) ShowRoundResult(result models.RoundResult) {
	mv.game.ShowResult(result)
}

// UpdateHome refreshes the home-tab history summary.
func (mv *MainView) UpdateHome(results []models.RoundResult, best time.Duration, hasBest bool) {
	mv.home.SetHistory(results)
	mv.home.SetBestTime(best, hasBest)
}

// UpdateStatus updates the status bar message.
func (mv *MainView) UpdateStatus(status string) {
	mv.status.SetStatus(status)
}

// ApplyAppearance switches the application theme and syncs the settings
// toggle.
func (mv *MainView) ApplyAppearance(dark bool) {
	fyne.Do(func() {
		fyne.CurrentApp().Settings().SetTheme(components.AppearanceTheme(dark))
		mv.settings.SetDarkMode(dark)
	})
}

// ShowError displays an error dialog.
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// Show displays the view.
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// GetWindow returns the main window.
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
