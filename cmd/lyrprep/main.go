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

const name = "lyrprep"

func main() {
	// コマンドライン引数の解析
	cfg, err := config.ParseFlags(name, transform.ModePlain, os.Args[1:])
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

	// バージョン表示の処理
	if cfg.ShowVersion {
		config.PrintVersion(os.Stdout, name)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// アプリケーションの実行
	if _, err := app.New(cfg).Run(ctx); err != nil {
		app.PrintError(os.Stderr, name, err)
		stop()
		os.Exit(1)
	}
}
