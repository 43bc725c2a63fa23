package components

import (
	"fmt"

	"quickmath/internal/engine"
	"quickmath/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// GameScreen is the Game tab. It renders one of four sub-views depending on
// the engine phase: an idle prompt, the pre-round countdown, the playing
// board with keypad, and the results view.
type GameScreen struct {
	container *fyne.Container

	// Idle view
	idleView    *fyne.Container
	startButton *widget.Button

	// Countdown view
	countdownView  *fyne.Container
	countdownLabel *widget.Label

	// Playing view
	playingView    *fyne.Container
	progressLabel  *widget.Label
	timeLabel      *widget.Label
	questionLabel  *widget.Label
	inputLabel     *widget.Label
	incorrectLabel *widget.Label
	keypad         *fyne.Container

	// Finished view
	finishedView    *fyne.Container
	resultTitle     *widget.Label
	resultTime      *widget.Label
	resultAnswered  *widget.Label
	playAgainButton *widget.Button
	homeButton      *widget.Button

	digitHandler     func(rune)
	clearHandler     func()
	startHandler     func()
	playAgainHandler func()
	homeHandler      func()
}

// NewGameScreen creates the game tab content.
func NewGameScreen() *GameScreen {
	gs := &GameScreen{}
	gs.createComponents()
	gs.buildLayout()
	return gs
}

func (gs *GameScreen) createComponents() {
	gs.startButton = widget.NewButton("Start", func() {
		if gs.startHandler != nil {
			gs.startHandler()
		}
	})
	gs.startButton.Importance = widget.HighImportance

	gs.countdownLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	gs.progressLabel = widget.NewLabel("")
	gs.timeLabel = widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true})
	gs.questionLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	gs.inputLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	gs.incorrectLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	gs.keypad = gs.buildKeypad()

	gs.resultTitle = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	gs.resultTime = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	gs.resultAnswered = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	gs.playAgainButton = widget.NewButton("Play Again", func() {
		if gs.playAgainHandler != nil {
			gs.playAgainHandler()
		}
	})
	gs.playAgainButton.Importance = widget.HighImportance
	gs.homeButton = widget.NewButton("Home", func() {
		if gs.homeHandler != nil {
			gs.homeHandler()
		}
	})
}

func (gs *GameScreen) buildKeypad() *fyne.Container {
	buttons := make([]fyne.CanvasObject, 0, 12)
	for _, digit := range []rune{'1', '2', '3', '4', '5', '6', '7', '8', '9'} {
		buttons = append(buttons, gs.digitButton(digit))
	}
	clearButton := widget.NewButton("C", func() {
		if gs.clearHandler != nil {
			gs.clearHandler()
		}
	})
	buttons = append(buttons, clearButton, gs.digitButton('0'), widget.NewLabel(""))
	return container.NewGridWithColumns(3, buttons...)
}

func (gs *GameScreen) digitButton(digit rune) *widget.Button {
	return widget.NewButton(string(digit), func() {
		if gs.digitHandler != nil {
			gs.digitHandler(digit)
		}
	})
}

func (gs *GameScreen) buildLayout() {
	gs.idleView = container.NewVBox(
		widget.NewLabelWithStyle("Ready to play?", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		gs.startButton,
	)
	gs.countdownView = container.NewVBox(
		widget.NewLabelWithStyle("Get ready", fyne.TextAlignCenter, fyne.TextStyle{}),
		gs.countdownLabel,
	)
	gs.playingView = container.NewVBox(
		container.NewBorder(nil, nil, gs.progressLabel, gs.timeLabel),
		gs.questionLabel,
		gs.inputLabel,
		gs.incorrectLabel,
		gs.keypad,
	)
	gs.finishedView = container.NewVBox(
		gs.resultTitle,
		gs.resultTime,
		gs.resultAnswered,
		gs.playAgainButton,
		gs.homeButton,
	)

	gs.countdownView.Hide()
	gs.playingView.Hide()
	gs.finishedView.Hide()

	gs.container = container.NewStack(gs.idleView, gs.countdownView, gs.playingView, gs.finishedView)
}

// Handler setters, called by the controller.

// SetDigitHandler sets the handler for keypad digit presses.
func (gs *GameScreen) SetDigitHandler(handler func(rune)) {
	gs.digitHandler = handler
}

// SetClearHandler sets the handler for the clear key.
func (gs *GameScreen) SetClearHandler(handler func()) {
	gs.clearHandler = handler
}

// SetStartHandler sets the handler for the idle-view start button.
func (gs *GameScreen) SetStartHandler(handler func()) {
	gs.startHandler = handler
}

// SetPlayAgainHandler sets the handler for the results-view restart button.
func (gs *GameScreen) SetPlayAgainHandler(handler func()) {
	gs.playAgainHandler = handler
}

// SetHomeHandler sets the handler for the results-view home button.
func (gs *GameScreen) SetHomeHandler(handler func()) {
	gs.homeHandler = handler
}

// ApplySnapshot renders the engine snapshot. Called on the UI thread.
func (gs *GameScreen) ApplySnapshot(snap engine.Snapshot) {
	switch snap.Phase {
	case models.PhaseIdle:
		gs.showOnly(gs.idleView)

	case models.PhaseCountdown:
		gs.countdownLabel.SetText(fmt.Sprintf("%d", snap.CountdownRemaining))
		gs.showOnly(gs.countdownView)

	case models.PhasePlaying:
		gs.progressLabel.SetText(fmt.Sprintf("%d / %d", snap.QuestionIndex+1, snap.QuestionCount))
		gs.timeLabel.SetText(models.FormatElapsed(snap.TimeRemaining))
		gs.questionLabel.SetText(snap.QuestionText)
		if snap.Input == "" {
			gs.inputLabel.SetText("_")
		} else {
			gs.inputLabel.SetText(snap.Input)
		}
		if snap.Incorrect {
			gs.incorrectLabel.SetText("Incorrect. Try again.")
		} else {
			gs.incorrectLabel.SetText("")
		}
		gs.showOnly(gs.playingView)

	case models.PhaseFinished:
		gs.showOnly(gs.finishedView)
	}
}

// ShowResult fills in the results view for a finished round.
func (gs *GameScreen) ShowResult(result models.RoundResult) {
	fyne.Do(func() {
		if result.Completed {
			gs.resultTitle.SetText("Finished!")
		} else {
			gs.resultTitle.SetText("Time's up")
		}
		gs.resultTime.SetText(fmt.Sprintf("Time: %s", models.FormatElapsed(result.Elapsed)))
		gs.resultAnswered.SetText(fmt.Sprintf("Answered: %d / %d",
			result.QuestionsAnswered, result.QuestionsTotal))
	})
}

// GetContainer returns the game tab container.
func (gs *GameScreen) GetContainer() *fyne.Container {
	return gs.container
}

func (gs *GameScreen) showOnly(view *fyne.Container) {
	for _, candidate := range []*fyne.Container{gs.idleView, gs.countdownView, gs.playingView, gs.finishedView} {
		if candidate == view {
			candidate.Show()
		} else {
			candidate.Hide()
		}
	}
}
