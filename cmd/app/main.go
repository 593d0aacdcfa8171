package main

import (
	"karaoke/config"
	"karaoke/di"
	"karaoke/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	application := di.InitializeService()
	application.Run()
}
