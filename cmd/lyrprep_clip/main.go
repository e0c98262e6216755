package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/app"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/config"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/transform"
)

const name = "lyrprep_clip"

func main() {
	cfg, err := config.ParseFlags(name, transform.ModeClipboard, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if errors.Is(err, config.ErrInvalidFlags) {
			os.Exit(1)
		}
		app.PrintError(os.Stderr, name, err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		config.PrintVersion(os.Stdout, name)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := app.New(cfg).Run(ctx); err != nil {
		app.PrintError(os.Stderr, name, err)
		stop()
		os.Exit(1)
	}
}
