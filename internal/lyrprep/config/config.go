// Package config はlyrprepコマンドの設定管理を行います
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/transform"
)

const Version = "0.1.0"

// ErrInvalidFlags はフラグの解析に失敗した場合のエラー。
// 詳細と使用方法はFlagSetが出力済み
var ErrInvalidFlags = errors.New("invalid flags")

const (
	// DefaultBaseURL はLRCLIB APIのデフォルトURL
	DefaultBaseURL = "https://lrclib.net"

	// DefaultRateLimit は1秒あたりのリクエスト数の上限
	DefaultRateLimit = 2.0

	// DefaultTimeout はHTTPリクエストのタイムアウト
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL はキャッシュの有効期限
	DefaultCacheTTL = 30 * time.Minute
)

// Config はlyrprep / lyrprep_clip の設定を保持します
type Config struct {
	Name        string
	Mode        transform.Mode
	Args        []string // 位置引数
	WriteBOM    bool
	DebugMode   bool
	ShowVersion bool
	ConfigPath  string
}

// InputPath は入力ファイルのパスを返します。位置引数が1つでない場合は空文字列
func (c *Config) InputPath() string {
	if len(c.Args) != 1 {
		return ""
	}
	return c.Args[0]
}

// LRCLIBConfig はLRCLIBクライアントの設定
type LRCLIBConfig struct {
	BaseURL   string
	RateLimit float64 // 0以下は無制限
	Timeout   time.Duration
	CacheDir  string
	CacheTTL  time.Duration
}

// DefaultLRCLIBConfig はデフォルトのLRCLIB設定を返します
func DefaultLRCLIBConfig() LRCLIBConfig {
	return LRCLIBConfig{
		BaseURL:   DefaultBaseURL,
		RateLimit: DefaultRateLimit,
		Timeout:   DefaultTimeout,
		CacheDir:  DefaultCacheDir(),
		CacheTTL:  DefaultCacheTTL,
	}
}

// FetchConfig はlrclib_fetchの設定を保持します
type FetchConfig struct {
	Name        string
	ID          int // 0以外の場合は検索せずにIDで取得する
	Track       string
	Artist      string
	Album       string
	OutputPath  string
	Convert     bool
	NoCache     bool
	WriteBOM    bool
	DebugMode   bool
	ShowVersion bool
	ConfigPath  string
	LRCLIB      LRCLIBConfig
}

// UsageText は使用方法の1行目を返します
func UsageText(name string) string {
	return fmt.Sprintf("Usage: %s [options] <file.lrc>", name)
}

// FetchUsageText はlrclib_fetchの使用方法の1行目を返します
func FetchUsageText(name string) string {
	return fmt.Sprintf("Usage: %s (-track <name> | -id <id>) [options]", name)
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags(name string, mode transform.Mode, args []string) (*Config, error) {
	cfg := &Config{Name: name, Mode: mode}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), UsageText(name))
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	// デバッグモード
	fs.BoolVar(&cfg.DebugMode, "debug", false, "enable debug output")
	fs.BoolVar(&cfg.DebugMode, "d", false, "enable debug output (shorthand)")

	// BOM付きで出力
	fs.BoolVar(&cfg.WriteBOM, "bom", false, "write the output file with a UTF-8 BOM")
	fs.BoolVar(&cfg.WriteBOM, "b", false, "write the output file with a UTF-8 BOM (shorthand)")

	// 設定ファイル
	fs.StringVar(&cfg.ConfigPath, "config", "", "path to a YAML settings file")
	fs.StringVar(&cfg.ConfigPath, "c", "", "path to a YAML settings file (shorthand)")

	// バージョン表示
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "show version information (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, parseError(err)
	}
	cfg.Args = fs.Args()

	settings, err := loadSettings(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		set := visited(fs)
		if settings.Debug != nil && !set["debug"] && !set["d"] {
			cfg.DebugMode = *settings.Debug
		}
		if settings.WriteBOM != nil && !set["bom"] && !set["b"] {
			cfg.WriteBOM = *settings.WriteBOM
		}
	}

	return cfg, nil
}

// ParseFetchFlags はlrclib_fetchのコマンドライン引数を解析して設定を返します
func ParseFetchFlags(name string, args []string) (*FetchConfig, error) {
	cfg := &FetchConfig{Name: name, LRCLIB: DefaultLRCLIBConfig()}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), FetchUsageText(name))
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.ID, "id", 0, "LRCLIB record id to fetch instead of searching")
	fs.StringVar(&cfg.Track, "track", "", "track name to search for (required unless -id is given)")
	fs.StringVar(&cfg.Track, "t", "", "track name to search for (shorthand)")
	fs.StringVar(&cfg.Artist, "artist", "", "artist name")
	fs.StringVar(&cfg.Artist, "a", "", "artist name (shorthand)")
	fs.StringVar(&cfg.Album, "album", "", "album name")
	fs.StringVar(&cfg.OutputPath, "o", "", "output .lrc path (default \"<track>.lrc\")")
	fs.BoolVar(&cfg.Convert, "convert", false, "also convert the fetched lyrics into a .txt file")
	fs.BoolVar(&cfg.NoCache, "no-cache", false, "bypass the response cache")
	fs.BoolVar(&cfg.WriteBOM, "bom", false, "write the converted file with a UTF-8 BOM")
	fs.Float64Var(&cfg.LRCLIB.RateLimit, "rate", cfg.LRCLIB.RateLimit, "maximum requests per second (0 = unlimited)")
	fs.StringVar(&cfg.ConfigPath, "config", "", "path to a YAML settings file")
	fs.StringVar(&cfg.ConfigPath, "c", "", "path to a YAML settings file (shorthand)")
	fs.BoolVar(&cfg.DebugMode, "debug", false, "enable debug output")
	fs.BoolVar(&cfg.DebugMode, "d", false, "enable debug output (shorthand)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "show version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "show version information (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, parseError(err)
	}

	settings, err := loadSettings(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		set := visited(fs)
		if settings.Debug != nil && !set["debug"] && !set["d"] {
			cfg.DebugMode = *settings.Debug
		}
		if settings.WriteBOM != nil && !set["bom"] {
			cfg.WriteBOM = *settings.WriteBOM
		}
		if err := settings.LRCLIB.apply(&cfg.LRCLIB, set["rate"]); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// PrintVersion はバージョン情報を表示します
func PrintVersion(w io.Writer, name string) {
	fmt.Fprintf(w, "%s version %s\n", name, Version)
}

// DefaultConfigPath はデフォルトの設定ファイルのパスを返します
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lyrprep", "config.yaml")
}

// DefaultCacheDir はデフォルトのキャッシュディレクトリを返します
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lyrprep")
	}
	return filepath.Join(dir, "lyrprep")
}

// loadSettings は設定ファイルを読み込みます。
// パスが指定されていない場合、デフォルトのパスにファイルがなければnilを返します
func loadSettings(path string) (*Settings, error) {
	if path != "" {
		return LoadFile(path)
	}
	path = DefaultConfigPath()
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return LoadFile(path)
}

// visited は明示的に指定されたフラグ名の集合を返します
func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// parseError はヘルプ表示以外の解析エラーをErrInvalidFlagsでラップします
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidFlags, err)
}
