package services

import (
	"quickmath/internal/logger"
	"quickmath/internal/models"
)

// SettingsService exposes the persisted user settings to the controller.
type SettingsService struct {
	repo *models.SettingsRepository
	log  logger.Logger
}

// NewSettingsService creates the settings service.
func NewSettingsService(repo *models.SettingsRepository, log logger.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

// DarkMode reports the persisted appearance flag.
func (ss *SettingsService) DarkMode() bool {
	return ss.repo.DarkMode()
}

// SetDarkMode persists the appearance flag.
func (ss *SettingsService) SetDarkMode(enabled bool) {
	ss.repo.SetDarkMode(enabled)
	ss.log.Debug("appearance changed", map[string]interface{}{
		"dark_mode": enabled,
	})
}
