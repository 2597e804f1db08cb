package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/morvin2701/pixelwalls/internal/buildinfo"
	"github.com/morvin2701/pixelwalls/internal/client/cli"
	"github.com/morvin2701/pixelwalls/internal/client/config"
	"github.com/morvin2701/pixelwalls/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.BuildZapLogger(logging.ZapConfig{
		Level:      cfg.LogLevel,
		Format:     "json",
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	app, cleanup, err := cli.Bootstrap(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cleanup()

	app.Run(ctx)

}
