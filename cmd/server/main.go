package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/morvin2701/pixelwalls/internal/buildinfo"
	"github.com/morvin2701/pixelwalls/internal/server"
	"github.com/morvin2701/pixelwalls/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
