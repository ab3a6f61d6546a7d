package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.mau.fi/util/exerrors"

	"github.com/corvid-labs/corpusbot/pkg/bot"
)

var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	generateConfig := flag.Bool("generate-config", false, "print the example config and exit")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("corpusbot %s (%s, built %s)\n", Tag, Commit, BuildTime)
		return
	}
	if *generateConfig {
		fmt.Print(bot.ExampleConfig)
		return
	}

	cfg, err := bot.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}
	log := exerrors.Must(cfg.Logging.Compile())

	b := exerrors.Must(bot.New(cfg, *log))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := b.Run(log.WithContext(ctx)); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Sync loop failed")
	}
	log.Info().Msg("Shutdown complete")
}
