package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// mockSettings is a map-backed driven.SettingsStore for testing.
type mockSettings struct {
	strings map[string]string
	ints    map[string]int
	bools   map[string]bool
}

func newMockSettings() *mockSettings {
	return &mockSettings{
		strings: make(map[string]string),
		ints:    make(map[string]int),
		bools:   make(map[string]bool),
	}
}

func (m *mockSettings) GetString(key string) string { return m.strings[key] }
func (m *mockSettings) GetInt(key string) int       { return m.ints[key] }
func (m *mockSettings) GetBool(key string) bool     { return m.bools[key] }
func (m *mockSettings) Set(key string, value any) error {
	if s, ok := value.(string); ok {
		m.strings[key] = s
	}
	return nil
}
func (m *mockSettings) Load() error { return nil }
func (m *mockSettings) Path() string {
	return "/tmp/config.toml"
}

var _ driven.SettingsStore = (*mockSettings)(nil)

func TestCredentialGate_KeyPresent(t *testing.T) {
	settings := newMockSettings()
	settings.strings[driven.SettingAPIKey] = "tok_abc123"
	gate := NewCredentialGate(settings)

	key, ok := gate.APIKey()
	assert.True(t, ok)
	assert.Equal(t, "tok_abc123", key)
}

func TestCredentialGate_KeyAbsent(t *testing.T) {
	gate := NewCredentialGate(newMockSettings())

	_, ok := gate.APIKey()
	assert.False(t, ok)
}

func TestCredentialGate_KeyWhitespace(t *testing.T) {
	settings := newMockSettings()
	settings.strings[driven.SettingAPIKey] = "   "
	gate := NewCredentialGate(settings)

	_, ok := gate.APIKey()
	assert.False(t, ok)
}

func TestCredentialGate_TrimsKey(t *testing.T) {
	settings := newMockSettings()
	settings.strings[driven.SettingAPIKey] = "  tok_abc123\n"
	gate := NewCredentialGate(settings)

	key, ok := gate.APIKey()
	assert.True(t, ok)
	assert.Equal(t, "tok_abc123", key)
}

func TestCredentialGate_NilSettings(t *testing.T) {
	gate := NewCredentialGate(nil)

	_, ok := gate.APIKey()
	assert.False(t, ok)
}
