package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dlmaster/download-master/internal/backend"
	"github.com/dlmaster/download-master/internal/config"
	"github.com/dlmaster/download-master/internal/control"
	"github.com/dlmaster/download-master/internal/store"
	"github.com/dlmaster/download-master/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.dlmaster.download-master"
	AppName = "Download Master"

	DefaultConfigPath = "config.yaml"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	configPath := os.Getenv("DLMASTER_CONFIG")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Wire the coordinator over the remote backend
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.HTTPTimeout())
	ctrl := control.NewService(client, store.NewTaskStore(), store.NewStatsCache(), cfg.PollInterval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ui.NewRootUI(ctx, myWindow, myApp, ctrl)

	// Poll until teardown; window close cancels the loop
	go ctrl.Run(ctx)

	myWindow.ShowAndRun()
}
