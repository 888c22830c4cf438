package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marginalia-cli/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the API key, sync cadence, and notifications.

Use subcommands to change specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Set the export API key",
	Long:  `Prompts for the export API access token and stores it in the settings file.`,
	RunE:  runSettingsKey,
}

var settingsIntervalCmd = &cobra.Command{
	Use:   "interval <minutes>",
	Short: "Set the automatic sync interval",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsInterval,
}

var settingsNotifyCmd = &cobra.Command{
	Use:   "notify <on|off>",
	Short: "Toggle progress toasts for automatic cycles",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsNotify,
}

var settingsAutoCmd = &cobra.Command{
	Use:   "auto <on|off>",
	Short: "Toggle automatic syncing",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAuto,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	settingsCmd.AddCommand(settingsIntervalCmd)
	settingsCmd.AddCommand(settingsNotifyCmd)
	settingsCmd.AddCommand(settingsAutoCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	config := services.SyncConfigFromSettings(settingsStore)

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Provider]")
	if key := settingsStore.GetString(driven.SettingAPIKey); key != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Println("  API Key: (not set)")
		cmd.Println("  Run 'marginalia settings key' to set it.")
	}
	cmd.Println()

	cmd.Println("[Sync]")
	auto := "on"
	if !config.Enabled {
		auto = "off"
	}
	notify := "on"
	if !config.Notify {
		notify = "off"
	}
	cmd.Printf("  Automatic: %s\n", auto)
	cmd.Printf("  Interval: %s\n", config.Interval)
	cmd.Printf("  Notifications: %s\n", notify)
	cmd.Println()

	cmd.Printf("Settings file: %s\n", settingsStore.Path())
	return nil
}

func runSettingsKey(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	cmd.Print("Enter API key: ")
	key := readPassword()
	cmd.Println()

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key must not be empty")
	}

	if err := settingsStore.Set(driven.SettingAPIKey, key); err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}

	cmd.Println("API key saved.")
	return nil
}

func runSettingsInterval(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes < 1 {
		return errors.New("interval must be a positive number of minutes")
	}

	if err := settingsStore.Set(driven.SettingSyncIntervalMinutes, minutes); err != nil {
		return fmt.Errorf("saving interval: %w", err)
	}

	cmd.Printf("Sync interval set to %d minutes.\n", minutes)
	cmd.Println("Restart the agent for the new cadence to take effect.")
	return nil
}

func runSettingsNotify(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	on, err := parseOnOff(args[0])
	if err != nil {
		return err
	}

	if err := settingsStore.Set(driven.SettingSyncNotify, on); err != nil {
		return fmt.Errorf("saving notification setting: %w", err)
	}

	if on {
		cmd.Println("Progress toasts enabled for automatic cycles.")
	} else {
		cmd.Println("Progress toasts disabled for automatic cycles.")
	}
	return nil
}

func runSettingsAuto(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	on, err := parseOnOff(args[0])
	if err != nil {
		return err
	}

	if err := settingsStore.Set(driven.SettingSyncDisabled, !on); err != nil {
		return fmt.Errorf("saving automatic sync setting: %w", err)
	}

	if on {
		cmd.Println("Automatic syncing enabled.")
	} else {
		cmd.Println("Automatic syncing disabled. 'marginalia sync' still works.")
	}
	return nil
}

// Helper functions.

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected 'on' or 'off', got %q", value)
	}
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
