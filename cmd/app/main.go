package main

import (
	"todoapp/config"
	"todoapp/di"
	"todoapp/shared/logger"
)

// @title Todo API
// @version 1.0
// @description Per-user todo items with attachment uploads.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
