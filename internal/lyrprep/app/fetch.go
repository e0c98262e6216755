package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/config"
	lyrerrors "github.com/shiroemons/go-lyrprep/internal/lyrprep/errors"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/fileutil"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/interfaces"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/models"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/transform"
)

// Fetcher はLRCLIBから歌詞を取得して .lrc ファイルに保存します
type Fetcher struct {
	config *config.FetchConfig
	source interfaces.LyricsSource
	logger interfaces.Logger
	fs     interfaces.FileSystem
	stdout io.Writer
}

// FetchOptions はFetcherの設定オプション
type FetchOptions struct {
	FileSystem interfaces.FileSystem
	Logger     interfaces.Logger
	Stdout     io.Writer
}

// NewFetcher は新しいFetcherを作成します
func NewFetcher(cfg *config.FetchConfig, source interfaces.LyricsSource, opts FetchOptions) *Fetcher {
	logger := opts.Logger
	if logger == nil {
		logger = config.NewLogger(cfg.DebugMode)
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Fetcher{
		config: cfg,
		source: source,
		logger: logger,
		fs:     fs,
		stdout: stdout,
	}
}

// Run は歌詞を取得して保存します。IDが指定されていれば検索せずに取得します。
// Convertが有効な場合は変換結果の .txt も保存します
func (f *Fetcher) Run(ctx context.Context) (*models.Result, error) {
	// 変換できない出力先には何も書き込まない
	if f.config.Convert && f.config.OutputPath != "" && !fileutil.HasLRCExtension(f.config.OutputPath) {
		return nil, lyrerrors.NewInputError("check", f.config.OutputPath, lyrerrors.ErrUnsupportedExtension)
	}

	record, err := f.lookup(ctx)
	if err != nil {
		return nil, err
	}
	f.logger.Infof("using record %d: %s - %s", record.ID, record.ArtistName, record.TrackName)

	outputPath := f.config.OutputPath
	if outputPath == "" {
		track := f.config.Track
		if track == "" {
			track = record.TrackName
		}
		outputPath = fileutil.GenerateLRCFilename(track)
	}
	if err := fileutil.SaveFile(f.fs, outputPath, []byte(record.SyncedLyrics)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveFile, lyrerrors.NewInputError("write", outputPath, err))
	}
	printSuccess(f.stdout, "Lyrics saved to: %s", outputPath)

	if !f.config.Convert {
		return &models.Result{
			Text:        record.SyncedLyrics,
			Destination: outputPath,
			Lines:       countLines(record.SyncedLyrics),
		}, nil
	}

	converter := NewWithOptions(&config.Config{
		Name:      f.config.Name,
		Mode:      transform.ModePlain,
		Args:      []string{outputPath},
		WriteBOM:  f.config.WriteBOM,
		DebugMode: f.config.DebugMode,
	}, Options{
		FileSystem: f.fs,
		Logger:     f.logger,
		Stdout:     f.stdout,
	})
	return converter.Run(ctx)
}

// lookup はIDまたは検索条件から同期歌詞を持つレコードを取得します
func (f *Fetcher) lookup(ctx context.Context) (models.Record, error) {
	if f.config.ID != 0 {
		record, err := f.source.Get(ctx, f.config.ID)
		if err != nil {
			return models.Record{}, err
		}
		if !record.HasSyncedLyrics() {
			return models.Record{}, fmt.Errorf("%w: id %d", ErrNoSyncedLyrics, f.config.ID)
		}
		return *record, nil
	}

	query := models.Query{
		Track:  f.config.Track,
		Artist: f.config.Artist,
		Album:  f.config.Album,
	}
	records, err := f.source.Search(ctx, query)
	if err != nil {
		return models.Record{}, err
	}
	f.logger.Debugf("found %d records for %q", len(records), query.Track)

	record, ok := firstSynced(records)
	if !ok {
		return models.Record{}, fmt.Errorf("%w: %s", ErrNoSyncedLyrics, query.Track)
	}
	return record, nil
}

// firstSynced はタイムスタンプ付きの歌詞を持つ最初のレコードを返します
func firstSynced(records []models.Record) (models.Record, bool) {
	for _, r := range records {
		if r.HasSyncedLyrics() {
			return r, true
		}
	}
	return models.Record{}, false
}
