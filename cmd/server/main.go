package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/healthgate/internal/buildinfo"
	"github.com/dmitrijs2005/healthgate/internal/config"
	"github.com/dmitrijs2005/healthgate/internal/logging"
	"github.com/dmitrijs2005/healthgate/internal/server"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
