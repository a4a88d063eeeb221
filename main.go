package main

import (
	"embed"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"go.aimuz.me/emojiviewer/config"
	"go.aimuz.me/emojiviewer/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	slog.Info("starting app", "version", version, "commit", commit, "date", date)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		cfg = config.Default()
	} else if err := cfg.SaveIfMissing(); err != nil {
		slog.Warn("write default config", "path", cfg.Path(), "error", err)
	}
	slog.Info("config loaded", "path", cfg.Path(), "hotkey", cfg.Hotkey)

	appService := app.New(version)

	wailsApp := application.New(application.Options{
		Name:        app.WindowTitle,
		Description: "Emoji picker with recent and favorite collections",
		Logger:      logger,
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			// Keep running in the tray when the window is closed
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	// Frameless: the frontend draws its own title bar
	mainWindow := wailsApp.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:            app.WindowTitle,
		Width:            cfg.WindowWidth,
		Height:           cfg.WindowHeight,
		URL:              "/",
		Frameless:        true,
		DisableResize:    true,
		BackgroundColour: application.NewRGB(32, 32, 32),
	})

	// Intercept window close: hide instead of destroy so tray can reopen
	mainWindow.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		e.Cancel()
		mainWindow.Hide()
	})

	appService.Init(wailsApp, mainWindow, cfg)

	systemTray := wailsApp.SystemTray.New()
	systemTray.SetLabel("😀")

	trayMenu := wailsApp.NewMenu()
	trayMenu.Add("Show Emoji Viewer").OnClick(func(ctx *application.Context) {
		appService.ShowWindow()
	})
	trayMenu.AddSeparator()
	trayMenu.Add("Quit").
		SetAccelerator("CmdOrCtrl+Q").
		OnClick(func(ctx *application.Context) {
			appService.Shutdown()
			wailsApp.Quit()
		})

	systemTray.SetMenu(trayMenu)

	if err := wailsApp.Run(); err != nil {
		slog.Error("run app", "error", err)
	}
}
