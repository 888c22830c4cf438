package services

import (
	"strings"

	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// CredentialGate resolves the export API key from settings.
// It is a pure short-circuit: it never returns an error, only an
// absence signal that terminates the cycle before any fetch.
type CredentialGate struct {
	settings driven.SettingsStore
}

// NewCredentialGate creates a credential gate over the settings store.
func NewCredentialGate(settings driven.SettingsStore) *CredentialGate {
	return &CredentialGate{settings: settings}
}

// APIKey returns the configured key and whether one is present.
// Whitespace-only values count as absent.
func (g *CredentialGate) APIKey() (string, bool) {
	if g.settings == nil {
		return "", false
	}
	key := strings.TrimSpace(g.settings.GetString(driven.SettingAPIKey))
	if key == "" {
		return "", false
	}
	return key, true
}
