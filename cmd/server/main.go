package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/roksva123/go-breeze-dashboard/internal/api"
	"github.com/roksva123/go-breeze-dashboard/internal/config"
	"github.com/roksva123/go-breeze-dashboard/internal/logger"
)

func main() {

	// LOAD ENV
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed load config:", err)
	}

	logger.Init(cfg.AppEnv, cfg.LogLevel)
	if !cfg.HasAPIKey() {
		logger.Warn("BREEZE_API_KEY is not set; dashboard requests will return 400")
	}

	// ROUTER
	r := api.NewRouter(config.Load, nil)

	// START SERVER
	logger.Info("server running", "port", cfg.Port, "config_file", cfg.ConfigFile)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
