//go:build windows

package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const (
	runKeyPath         = `Software\Microsoft\Windows\CurrentVersion\Run`
	autostartValueName = "PastePrime"
)

// RegistryAutostart keeps the program in the current user's Run key
type RegistryAutostart struct {
	value string // quoted executable path, empty when not registrable
}

// NewAutostart creates the autostart handler for the running executable
func NewAutostart() Autostart {
	return &RegistryAutostart{value: runValue()}
}

// runValue returns the Run key value for this process. Binaries started with
// `go run` live in the temp dir and must not be registered.
func runValue() string {
	exe, err := os.Executable()
	if err != nil {
		slog.Warn("Failed to resolve executable path", "error", err)
		return ""
	}
	if !strings.EqualFold(filepath.Ext(exe), ".exe") {
		return ""
	}
	if tmp := os.TempDir(); tmp != "" && strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tmp)) {
		return ""
	}
	// Quoted in case the path has spaces
	return `"` + exe + `"`
}

// Enabled reports whether the Run key points at this executable
func (a *RegistryAutostart) Enabled() bool {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer key.Close()

	value, _, err := key.GetStringValue(autostartValueName)
	if err != nil {
		if !errors.Is(err, registry.ErrNotExist) {
			slog.Warn("Failed to read autostart value", "error", err)
		}
		return false
	}
	return a.value != "" && value == a.value
}

// Toggle adds or removes the Run key value
func (a *RegistryAutostart) Toggle() error {
	if a.value == "" {
		return fmt.Errorf("autostart needs an installed .exe")
	}

	key, _, err := registry.CreateKey(
		registry.CURRENT_USER,
		runKeyPath,
		registry.QUERY_VALUE|registry.SET_VALUE,
	)
	if err != nil {
		return fmt.Errorf("open run key: %w", err)
	}
	defer key.Close()

	if a.Enabled() {
		if err := key.DeleteValue(autostartValueName); err != nil {
			return fmt.Errorf("remove autostart value: %w", err)
		}
		slog.Info("Autostart disabled")
		return nil
	}

	if err := key.SetStringValue(autostartValueName, a.value); err != nil {
		return fmt.Errorf("set autostart value: %w", err)
	}
	slog.Info("Autostart enabled", "command", a.value)
	return nil
}
