package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

var (
	// ErrReadSettings は設定ファイルの読み込みに失敗した場合のエラー
	ErrReadSettings = errors.New("failed to read settings file")

	// ErrParseSettings は設定ファイルの解析に失敗した場合のエラー
	ErrParseSettings = errors.New("failed to parse settings file")
)

// Settings はYAML設定ファイルの内容を表します。未指定の項目はnilまたは空文字列
type Settings struct {
	Debug    *bool          `yaml:"debug"`
	WriteBOM *bool          `yaml:"write_bom"`
	LRCLIB   LRCLIBSettings `yaml:"lrclib"`
}

// LRCLIBSettings はLRCLIBに関する設定
type LRCLIBSettings struct {
	BaseURL   string   `yaml:"base_url"`
	RateLimit *float64 `yaml:"rate_limit"`
	Timeout   string   `yaml:"timeout"`
	CacheDir  string   `yaml:"cache_dir"`
	CacheTTL  string   `yaml:"cache_ttl"`
}

// LoadFile はYAML設定ファイルを読み込みます
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadSettings, path, err)
	}
	return ParseSettings(data)
}

// ParseSettings はYAMLのバイト列を解析します
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseSettings, err)
	}
	return &s, nil
}

// apply は設定ファイルの値をcfgに反映します。rateFlagSetがtrueの場合rate_limitは無視します
func (s LRCLIBSettings) apply(cfg *LRCLIBConfig, rateFlagSet bool) error {
	if s.BaseURL != "" {
		cfg.BaseURL = s.BaseURL
	}
	if s.RateLimit != nil && !rateFlagSet {
		cfg.RateLimit = *s.RateLimit
	}
	if s.Timeout != "" {
		d, err := time.ParseDuration(s.Timeout)
		if err != nil {
			return fmt.Errorf("%w: lrclib.timeout: %w", ErrParseSettings, err)
		}
		cfg.Timeout = d
	}
	if s.CacheDir != "" {
		cfg.CacheDir = s.CacheDir
	}
	if s.CacheTTL != "" {
		d, err := time.ParseDuration(s.CacheTTL)
		if err != nil {
			return fmt.Errorf("%w: lrclib.cache_ttl: %w", ErrParseSettings, err)
		}
		cfg.CacheTTL = d
	}
	return nil
}
