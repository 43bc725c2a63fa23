package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SettingsScreen is the Settings tab: the appearance toggle plus app info.
type SettingsScreen struct {
	container      *fyne.Container
	darkModeCheck  *widget.Check
	versionLabel   *widget.Label
	darkModeChange func(bool)
}

// NewSettingsScreen creates the settings tab content.
func NewSettingsScreen(appVersion string) *SettingsScreen {
	ss := &SettingsScreen{}
	ss.createComponents(appVersion)
	ss.buildLayout()
	return ss
}

func (ss *SettingsScreen) createComponents(appVersion string) {
	ss.darkModeCheck = widget.NewCheck("Dark appearance", func(checked bool) {
		if ss.darkModeChange != nil {
			ss.darkModeChange(checked)
		}
	})
	ss.versionLabel = widget.NewLabel(fmt.Sprintf("QuickMath %s", appVersion))
}

func (ss *SettingsScreen) buildLayout() {
	ss.container = container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		ss.darkModeCheck,
		widget.NewSeparator(),
		ss.versionLabel,
	)
}

// SetDarkModeHandler sets the handler for appearance toggle changes.
func (ss *SettingsScreen) SetDarkModeHandler(handler func(bool)) {
	ss.darkModeChange = handler
}

// SetDarkMode updates the toggle without firing the change handler.
func (ss *SettingsScreen) SetDarkMode(enabled bool) {
	fyne.Do(func() {
		change := ss.darkModeChange
		ss.darkModeChange = nil
		ss.darkModeCheck.SetChecked(enabled)
		ss.darkModeChange = change
	})
}

// GetContainer returns the settings tab container.
func (ss *SettingsScreen) GetContainer() *fyne.Container {
	return ss.container
}
