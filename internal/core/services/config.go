package services

import (
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// SyncConfigFromSettings builds the scheduler configuration from stored
// settings, falling back to defaults for absent keys.
func SyncConfigFromSettings(settings driven.SettingsStore) domain.SyncConfig {
	config := domain.DefaultSyncConfig()
	if settings == nil {
		return config
	}

	if minutes := settings.GetInt(driven.SettingSyncIntervalMinutes); minutes > 0 {
		config.Interval = time.Duration(minutes) * time.Minute
	}
	if settings.GetBool(driven.SettingSyncDisabled) {
		config.Enabled = false
	}
	if settings.GetBool(driven.SettingSyncNotify) {
		config.Notify = true
	}
	return config
}
