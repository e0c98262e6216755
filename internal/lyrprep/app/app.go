// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/clipboard"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/config"
	lyrerrors "github.com/shiroemons/go-lyrprep/internal/lyrprep/errors"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/fileutil"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/interfaces"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/models"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/transform"
)

// App はLRCファイルの変換を管理します
type App struct {
	config      *config.Config
	logger      interfaces.Logger
	transformer interfaces.Transformer
	fs          interfaces.FileSystem
	clipboard   interfaces.Clipboard
	stdout      io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Clipboard  interfaces.Clipboard
	Logger     interfaces.Logger
	Stdout     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = config.NewLogger(cfg.DebugMode)
	}

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// クリップボードはクリップボードモードでのみ使用する
	cb := opts.Clipboard
	if cb == nil && cfg.Mode == transform.ModeClipboard {
		cb = clipboard.NewSystem()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config:      cfg,
		logger:      logger,
		transformer: transform.New(cfg.Mode),
		fs:          fs,
		clipboard:   cb,
		stdout:      stdout,
	}
}

// Run は入力ファイルを変換し、モードに応じてファイルまたはクリップボードに出力します
func (a *App) Run(ctx context.Context) (*models.Result, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	inputPath, err := a.Validate()
	if err != nil {
		return nil, err
	}

	mode := a.transformer.Mode()
	a.logger.Debugf("reading %s (mode: %s)", inputPath, mode)
	data, err := a.fs.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, lyrerrors.NewInputError("read", inputPath, err))
	}

	text, err := fileutil.DecodeUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, lyrerrors.NewInputError("decode", inputPath, err))
	}

	output := a.transformer.TransformText(text)
	result := &models.Result{
		Text:  output,
		Lines: countLines(output),
	}
	a.logger.Debugf("transformed %d bytes into %d output lines", len(data), result.Lines)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if mode == transform.ModeClipboard {
		if err := a.copyToClipboard(output); err != nil {
			return nil, err
		}
		printSuccess(a.stdout, "Processed text copied to clipboard!")
		return result, nil
	}

	outputPath := fileutil.GenerateOutputPath(inputPath)
	if err := a.saveFile(outputPath, output); err != nil {
		return nil, err
	}
	result.Destination = outputPath
	printSuccess(a.stdout, "Processed file saved to: %s", outputPath)

	return result, nil
}

// Validate は位置引数を検証し、入力ファイルのパスを返します
func (a *App) Validate() (string, error) {
	if len(a.config.Args) != 1 {
		return "", ErrUsage
	}

	inputPath := a.config.InputPath()

	if !a.fs.FileExists(inputPath) {
		return "", lyrerrors.NewInputError("open", inputPath, lyrerrors.ErrFileNotFound)
	}
	if !fileutil.HasLRCExtension(inputPath) {
		return "", lyrerrors.NewInputError("check", inputPath, lyrerrors.ErrUnsupportedExtension)
	}

	return inputPath, nil
}

// saveFile は変換結果をファイルに保存します。既存のファイルは上書きします
func (a *App) saveFile(outputPath, output string) error {
	data, err := fileutil.EncodeUTF8(output, a.config.WriteBOM)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	if err := fileutil.SaveFile(a.fs, outputPath, data); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, lyrerrors.NewInputError("write", outputPath, err))
	}
	a.logger.Debugf("wrote %d bytes to %s", len(data), outputPath)
	return nil
}

// copyToClipboard は変換結果をクリップボードにコピーします
func (a *App) copyToClipboard(output string) error {
	if a.clipboard == nil {
		return fmt.Errorf("%w: %w", ErrClipboard, clipboard.ErrUnsupported)
	}
	if err := a.clipboard.WriteAll(output); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}

// countLines は出力の行数を返します
func countLines(output string) int {
	if output == "" {
		return 0
	}
	return strings.Count(output, "\n") + 1
}
