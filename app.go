package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pasteprime/config"
	"pasteprime/hotkey"
	"pasteprime/inject"
	"pasteprime/platform"
	"pasteprime/storage"
	"pasteprime/systray"
)

// App wires the keyboard hook, the chord interceptor and the clipboard typist
type App struct {
	cfg         *config.Config
	hook        platform.Hook
	autostart   platform.Autostart
	interceptor *hotkey.Interceptor
	history     *storage.DB
	tray        *systray.SystrayManager
}

// NewApp creates a new app instance
func NewApp(cfg *config.Config, configDir string, iconData []byte) (*App, error) {
	a := &App{
		cfg:       cfg,
		hook:      platform.NewHook(),
		autostart: platform.NewAutostart(),
	}

	var recorder inject.Recorder
	if cfg.History.Enabled {
		db, err := storage.Open(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		a.history = db
		recorder = db
	}

	injector := inject.NewInjector(
		platform.NewClipboard(),
		platform.NewKeyboard(),
		recorder,
		inject.Options{
			KeyDelay: time.Duration(cfg.Typing.KeyDelayMs) * time.Millisecond,
			MaxChars: cfg.Typing.MaxChars,
		},
	)

	a.interceptor = hotkey.NewInterceptor(injector.Run)
	a.tray = systray.NewSystrayManager(a.autostart, iconData)

	return a, nil
}

// Run installs the hook and blocks in the tray loop until Exit or ctx is done
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.pruneHistory()

	if err := a.hook.Start(ctx, a.interceptor); err != nil {
		a.Close()
		return fmt.Errorf("failed to install keyboard hook: %w", err)
	}

	slog.Info("Paste Prime started", "hotkey", "lctrl+lshift+v", "autostart", a.autostart.Enabled())

	go func() {
		select {
		case <-ctx.Done():
			a.tray.Stop()
		case <-a.tray.WaitForQuit():
		}
		cancel()
	}()

	// Blocks until the tray exits
	a.tray.Run()

	cancel()
	<-a.hook.Done()

	return a.Close()
}

// Close releases the history database
func (a *App) Close() error {
	if a.history == nil {
		return nil
	}
	err := a.history.Close()
	a.history = nil
	return err
}

func (a *App) pruneHistory() {
	if a.history == nil || a.cfg.History.RetentionDays == 0 {
		return
	}

	removed, err := a.history.Prune(a.cfg.History.RetentionDays)
	if err != nil {
		slog.Warn("Failed to prune history", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("Pruned history", "removed", removed, "retention_days", a.cfg.History.RetentionDays)
	}

	if stats, err := a.history.GetOverallStats(a.cfg.History.RetentionDays); err == nil {
		slog.Debug("History loaded",
			"injections", stats.TotalInjections,
			"chars", stats.TotalTypedChars,
			"failures", stats.FailureCount)
	}
}
