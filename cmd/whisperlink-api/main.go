package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/whisperlink-dev/whisperlink/internal/config"
	"github.com/whisperlink-dev/whisperlink/internal/logger"
	"github.com/whisperlink-dev/whisperlink/internal/router"
	"github.com/whisperlink-dev/whisperlink/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}

	r := router.New(deps)

	logger.Log.Info("server started", "address", cfg.Public.Address)
	if err := http.ListenAndServe(cfg.Public.Address, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
