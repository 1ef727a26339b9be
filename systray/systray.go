package systray

import (
	"log/slog"

	"github.com/getlantern/systray"
)

// Autostart is the toggle/status pair behind the "Start with Windows" item
type Autostart interface {
	Enabled() bool
	Toggle() error
}

// SystrayManager manages the system tray icon and menu
type SystrayManager struct {
	autostart Autostart
	iconData  []byte
	quit      chan struct{}
}

// NewSystrayManager creates a new systray manager
func NewSystrayManager(autostart Autostart, iconData []byte) *SystrayManager {
	return &SystrayManager{
		autostart: autostart,
		iconData:  iconData,
		quit:      make(chan struct{}),
	}
}

// Run starts the system tray (blocking call, must run on the main goroutine)
func (m *SystrayManager) Run() {
	systray.Run(m.onReady, m.onExit)
}

// Stop stops the system tray
func (m *SystrayManager) Stop() {
	systray.Quit()
}

// WaitForQuit returns a channel that will be closed when user clicks Exit
func (m *SystrayManager) WaitForQuit() <-chan struct{} {
	return m.quit
}

// onReady is called when the systray is ready
func (m *SystrayManager) onReady() {
	if len(m.iconData) > 0 {
		systray.SetIcon(m.iconData)
	}

	systray.SetTitle("Paste Prime")
	systray.SetTooltip("Paste Prime - Ctrl+Shift+V types the clipboard")

	mAutostart := systray.AddMenuItemCheckbox("Start with Windows", "Start Paste Prime when you log in", m.autostart.Enabled())
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Exit", "Exit Paste Prime")

	go func() {
		for {
			select {
			case <-mAutostart.ClickedCh:
				m.toggleAutostart(mAutostart)
			case <-mQuit.ClickedCh:
				slog.Info("User requested quit from system tray")
				close(m.quit)
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the systray is exiting
func (m *SystrayManager) onExit() {
	slog.Info("System tray exited")
}

func (m *SystrayManager) toggleAutostart(item *systray.MenuItem) {
	if err := m.autostart.Toggle(); err != nil {
		slog.Error("Failed to toggle autostart", "error", err)
	}
	syncCheck(item, m.autostart.Enabled())
}

type checkable interface {
	Check()
	Uncheck()
}

// syncCheck makes the menu checkbox follow the registry state
func syncCheck(item checkable, enabled bool) {
	if enabled {
		item.Check()
		return
	}
	item.Uncheck()
}
