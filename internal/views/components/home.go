package components

import (
	"fmt"
	"time"

	"quickmath/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// HomeScreen is the Home tab: the play entry point plus the round history
// summary. Daily Puzzle and Custom Game are visible but not yet available.
type HomeScreen struct {
	container    *fyne.Container
	playButton   *widget.Button
	dailyButton  *widget.Button
	customButton *widget.Button
	bestLabel    *widget.Label
	historyBox   *fyne.Container

	playHandler func()
}

// NewHomeScreen creates the home tab content.
func NewHomeScreen() *HomeScreen {
	hs := &HomeScreen{}
	hs.createComponents()
	hs.buildLayout()
	return hs
}

func (hs *HomeScreen) createComponents() {
	hs.playButton = widget.NewButton("Play", func() {
		if hs.playHandler != nil {
			hs.playHandler()
		}
	})
	hs.playButton.Importance = widget.HighImportance

	hs.dailyButton = widget.NewButton("Daily Puzzle", nil)
	hs.dailyButton.Disable()
	hs.customButton = widget.NewButton("Custom Game", nil)
	hs.customButton.Disable()

	hs.bestLabel = widget.NewLabel("Best time: --")
	hs.historyBox = container.NewVBox()
}

func (hs *HomeScreen) buildLayout() {
	hs.container = container.NewVBox(
		widget.NewLabelWithStyle("QuickMath", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		hs.playButton,
		hs.dailyButton,
		hs.customButton,
		widget.NewSeparator(),
		hs.bestLabel,
		widget.NewLabelWithStyle("Recent rounds", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		hs.historyBox,
	)
}

// SetPlayHandler sets the handler for the Play button.
func (hs *HomeScreen) SetPlayHandler(handler func()) {
	hs.playHandler = handler
}

// SetBestTime updates the best-time display; hasBest is false until a round
// has been completed.
func (hs *HomeScreen) SetBestTime(best time.Duration, hasBest bool) {
	fyne.Do(func() {
		if hasBest {
			hs.bestLabel.SetText(fmt.Sprintf("Best time: %s", models.FormatElapsed(best)))
		} else {
			hs.bestLabel.SetText("Best time: --")
		}
	})
}

// SetHistory replaces the recent-rounds list.
func (hs *HomeScreen) SetHistory(results []models.RoundResult) {
	fyne.Do(func() {
		hs.historyBox.Objects = nil
		if len(results) == 0 {
			hs.historyBox.Add(widget.NewLabel("No rounds played yet."))
		}
		for _, result := range results {
			hs.historyBox.Add(widget.NewLabel(formatHistoryLine(result)))
		}
		hs.historyBox.Refresh()
	})
}

// GetContainer returns the home tab container.
func (hs *HomeScreen) GetContainer() *fyne.Container {
	return hs.container
}

func formatHistoryLine(result models.RoundResult) string {
	day := result.PlayedAt.Local().Format("Jan 2 15:04")
	if result.Completed {
		return fmt.Sprintf("%s — %d/%d in %s", day,
			result.QuestionsAnswered, result.QuestionsTotal, models.FormatElapsed(result.Elapsed))
	}
	return fmt.Sprintf("%s — %d/%d, time up", day,
		result.QuestionsAnswered, result.QuestionsTotal)
}
