package models

import "fyne.io/fyne/v2"

const darkModePreferenceKey = "dark_mode"

// SettingsRepository persists user-facing application settings through the
// Fyne preferences store. The only setting today is the appearance flag.
type SettingsRepository struct {
	prefs fyne.Preferences
}

// NewSettingsRepository creates a repository over the given preferences store.
func NewSettingsRepository(prefs fyne.Preferences) *SettingsRepository {
	return &SettingsRepository{prefs: prefs}
}

// DarkMode reports whether the dark appearance is enabled.
func (sr *SettingsRepository) DarkMode() bool {
	return sr.prefs.BoolWithFallback(darkModePreferenceKey, false)
}

// SetDarkMode persists the appearance flag.
func (sr *SettingsRepository) SetDarkMode(enabled bool) {
	sr.prefs.SetBool(darkModePreferenceKey, enabled)
}
