// Package main - Entry point for the fieldops-cost API server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"fieldops-cost/api"
	"fieldops-cost/internal/config"
	"fieldops-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			logging.Error("failed to load config", zap.Error(err))
		} else {
			config.Set(loaded)
			cfg = loaded
		}
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	server := api.NewServer(version, cfg.Currency)

	logging.Info("starting fieldops-cost server",
		zap.String("addr", *addr),
		zap.String("version", version),
		zap.String("currency", cfg.Currency.String()))

	if err := http.ListenAndServe(*addr, server); err != nil {
		logging.Error("server exited", zap.Error(err))
	}
}
