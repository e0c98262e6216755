package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/app"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/cache"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/config"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/interfaces"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/lrclib"
)

const name = "lrclib_fetch"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseFetchFlags(name, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, config.ErrInvalidFlags) {
			return 1
		}
		app.PrintError(os.Stderr, name, err)
		return 1
	}

	if cfg.ShowVersion {
		config.PrintVersion(os.Stdout, name)
		return 0
	}
	if cfg.Track == "" && cfg.ID == 0 {
		fmt.Fprintln(os.Stderr, config.FetchUsageText(name))
		return 1
	}

	logger := config.NewLogger(cfg.DebugMode)

	// キャッシュはベストエフォート。開けない場合はキャッシュなしで続行する
	var store interfaces.Cache
	if !cfg.NoCache {
		s, err := cache.Open(cache.Options{
			Dir:    cfg.LRCLIB.CacheDir,
			TTL:    cfg.LRCLIB.CacheTTL,
			Logger: logger,
		})
		if err != nil {
			logger.Warnf("cache disabled: %v", err)
		} else {
			defer s.Close()
			store = s
		}
	}

	client := lrclib.NewClient(lrclib.Options{
		BaseURL:   cfg.LRCLIB.BaseURL,
		Timeout:   cfg.LRCLIB.Timeout,
		RateLimit: cfg.LRCLIB.RateLimit,
		Cache:     store,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher := app.NewFetcher(cfg, client, app.FetchOptions{Logger: logger})
	if _, err := fetcher.Run(ctx); err != nil {
		app.PrintError(os.Stderr, name, err)
		return 1
	}
	return 0
}
