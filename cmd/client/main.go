package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/hrconsole/internal/buildinfo"
	"github.com/dmitrijs2005/hrconsole/internal/client/cli"
	"github.com/dmitrijs2005/hrconsole/internal/client/config"
	"github.com/dmitrijs2005/hrconsole/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
