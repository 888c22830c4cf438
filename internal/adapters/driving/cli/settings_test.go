package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

func setupSettingsTest(settings *cliMockSettings) func() {
	oldSettings := settingsStore
	settingsStore = settings
	return func() { settingsStore = oldSettings }
}

func TestSettingsShow_MasksAPIKey(t *testing.T) {
	settings := newCLIMockSettings()
	settings.strings[driven.SettingAPIKey] = "tok_abcdef123456"
	cleanup := setupSettingsTest(settings)
	defer cleanup()

	out, err := executeCommand("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "tok_...3456")
	assert.NotContains(t, out, "tok_abcdef123456")
}

func TestSettingsShow_NoKey(t *testing.T) {
	cleanup := setupSettingsTest(newCLIMockSettings())
	defer cleanup()

	out, err := executeCommand("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "API Key: (not set)")
	assert.Contains(t, out, "Interval: 30m0s")
}

func TestSettingsInterval_SetsMinutes(t *testing.T) {
	settings := newCLIMockSettings()
	cleanup := setupSettingsTest(settings)
	defer cleanup()

	out, err := executeCommand("settings", "interval", "45")

	require.NoError(t, err)
	assert.Equal(t, 45, settings.sets[driven.SettingSyncIntervalMinutes])
	assert.Contains(t, out, "45 minutes")
}

func TestSettingsInterval_RejectsInvalid(t *testing.T) {
	cleanup := setupSettingsTest(newCLIMockSettings())
	defer cleanup()

	_, err := executeCommand("settings", "interval", "zero")
	assert.Error(t, err)

	_, err = executeCommand("settings", "interval", "0")
	assert.Error(t, err)
}

func TestSettingsNotify_Toggle(t *testing.T) {
	settings := newCLIMockSettings()
	cleanup := setupSettingsTest(settings)
	defer cleanup()

	_, err := executeCommand("settings", "notify", "on")
	require.NoError(t, err)
	assert.Equal(t, true, settings.sets[driven.SettingSyncNotify])

	_, err = executeCommand("settings", "notify", "off")
	require.NoError(t, err)
	assert.Equal(t, false, settings.sets[driven.SettingSyncNotify])
}

func TestSettingsAuto_Toggle(t *testing.T) {
	settings := newCLIMockSettings()
	cleanup := setupSettingsTest(settings)
	defer cleanup()

	_, err := executeCommand("settings", "auto", "off")
	require.NoError(t, err)
	assert.Equal(t, true, settings.sets[driven.SettingSyncDisabled])
}

func TestSettingsAuto_RejectsGarbage(t *testing.T) {
	cleanup := setupSettingsTest(newCLIMockSettings())
	defer cleanup()

	_, err := executeCommand("settings", "auto", "maybe")
	assert.Error(t, err)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "****", maskAPIKey("12345678"))
	assert.Equal(t, "tok_...wxyz", maskAPIKey("tok_abcdefghwxyz"))
}

func TestParseOnOff(t *testing.T) {
	for _, value := range []string{"on", "ON", "true", "yes"} {
		got, err := parseOnOff(value)
		require.NoError(t, err, value)
		assert.True(t, got, value)
	}
	for _, value := range []string{"off", "false", "NO"} {
		got, err := parseOnOff(value)
		require.NoError(t, err, value)
		assert.False(t, got, value)
	}
	_, err := parseOnOff("sometimes")
	assert.Error(t, err)
}
