package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/transform"
)

// isolateConfigDir はユーザーの設定ファイルを読まないように設定ディレクトリを差し替えます
func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlags(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := ParseFlags("lyrprep", transform.ModePlain, []string{"-d", "-b", "song.lrc"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if !cfg.DebugMode {
		t.Error("Expected DebugMode to be true")
	}
	if !cfg.WriteBOM {
		t.Error("Expected WriteBOM to be true")
	}
	if cfg.InputPath() != "song.lrc" {
		t.Errorf("Expected InputPath 'song.lrc', got '%s'", cfg.InputPath())
	}
	if cfg.Mode != transform.ModePlain {
		t.Errorf("Expected ModePlain, got %v", cfg.Mode)
	}
}

func TestParseFlags_ArgCount(t *testing.T) {
	isolateConfigDir(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "引数なし", args: []string{}, want: 0},
		{name: "引数1つ", args: []string{"a.lrc"}, want: 1},
		{name: "引数2つ", args: []string{"a.lrc", "b.lrc"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags("lyrprep_clip", transform.ModeClipboard, tt.args)
			if err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			if len(cfg.Args) != tt.want {
				t.Errorf("Expected %d args, got %d", tt.want, len(cfg.Args))
			}
			if tt.want != 1 && cfg.InputPath() != "" {
				t.Errorf("Expected empty InputPath, got %q", cfg.InputPath())
			}
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	isolateConfigDir(t)

	_, err := ParseFlags("lyrprep", transform.ModePlain, []string{"-unknown", "a.lrc"})
	if !errors.Is(err, ErrInvalidFlags) {
		t.Fatalf("Expected ErrInvalidFlags, got %v", err)
	}

	_, err = ParseFetchFlags("lrclib_fetch", []string{"-id", "abc"})
	if !errors.Is(err, ErrInvalidFlags) {
		t.Fatalf("Expected ErrInvalidFlags, got %v", err)
	}
}

func TestParseFlags_Help(t *testing.T) {
	isolateConfigDir(t)

	_, err := ParseFlags("lyrprep", transform.ModePlain, []string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Expected flag.ErrHelp, got %v", err)
	}
	if errors.Is(err, ErrInvalidFlags) {
		t.Error("Help should not be reported as invalid flags")
	}
}

func TestParseFlags_SettingsFile(t *testing.T) {
	dir := isolateConfigDir(t)
	path := writeSettings(t, dir, "debug: true\nwrite_bom: true\n")

	cfg, err := ParseFlags("lyrprep", transform.ModePlain, []string{"-c", path, "song.lrc"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if !cfg.DebugMode {
		t.Error("Expected DebugMode from settings file")
	}
	if !cfg.WriteBOM {
		t.Error("Expected WriteBOM from settings file")
	}

	// 明示的なフラグは設定ファイルより優先される
	cfg, err = ParseFlags("lyrprep", transform.ModePlain, []string{"-c", path, "-bom=false", "song.lrc"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.WriteBOM {
		t.Error("Expected -bom=false to override settings file")
	}
}

func TestParseFlags_DefaultSettingsFile(t *testing.T) {
	isolateConfigDir(t)
	path := DefaultConfigPath()
	if path == "" {
		t.Skip("no user config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("write_bom: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags("lyrprep", transform.ModePlain, []string{"song.lrc"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if !cfg.WriteBOM {
		t.Error("Expected WriteBOM from default settings file")
	}
}

func TestParseFlags_MissingSettingsFile(t *testing.T) {
	dir := isolateConfigDir(t)

	_, err := ParseFlags("lyrprep", transform.ModePlain, []string{"-config", filepath.Join(dir, "missing.yaml"), "song.lrc"})
	if !errors.Is(err, ErrReadSettings) {
		t.Fatalf("Expected ErrReadSettings, got %v", err)
	}
}

func TestParseFetchFlags(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := ParseFetchFlags("lrclib_fetch", []string{"-id", "42", "-track", "Song", "-a", "Band", "-album", "LP", "-o", "out.lrc", "-convert", "-no-cache", "-rate", "0"})
	if err != nil {
		t.Fatalf("ParseFetchFlags failed: %v", err)
	}

	if cfg.ID != 42 {
		t.Errorf("Expected ID 42, got %d", cfg.ID)
	}
	if cfg.Track != "Song" || cfg.Artist != "Band" || cfg.Album != "LP" {
		t.Errorf("Unexpected query: %q / %q / %q", cfg.Track, cfg.Artist, cfg.Album)
	}
	if cfg.OutputPath != "out.lrc" {
		t.Errorf("Expected OutputPath 'out.lrc', got %q", cfg.OutputPath)
	}
	if !cfg.Convert || !cfg.NoCache {
		t.Error("Expected Convert and NoCache to be true")
	}
	if cfg.LRCLIB.RateLimit != 0 {
		t.Errorf("Expected RateLimit 0, got %v", cfg.LRCLIB.RateLimit)
	}
	if cfg.LRCLIB.BaseURL != DefaultBaseURL {
		t.Errorf("Expected default BaseURL, got %q", cfg.LRCLIB.BaseURL)
	}
	if cfg.LRCLIB.CacheTTL != DefaultCacheTTL {
		t.Errorf("Expected default CacheTTL, got %v", cfg.LRCLIB.CacheTTL)
	}
}

func TestParseFetchFlags_SettingsFile(t *testing.T) {
	dir := isolateConfigDir(t)
	path := writeSettings(t, dir, strings.Join([]string{
		"lrclib:",
		"  base_url: http://localhost:8080",
		"  rate_limit: 5",
		"  timeout: 5s",
		"  cache_dir: /tmp/lyrprep-cache",
		"  cache_ttl: 1h",
		"",
	}, "\n"))

	cfg, err := ParseFetchFlags("lrclib_fetch", []string{"-c", path, "-t", "Song"})
	if err != nil {
		t.Fatalf("ParseFetchFlags failed: %v", err)
	}

	if cfg.LRCLIB.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected BaseURL from settings, got %q", cfg.LRCLIB.BaseURL)
	}
	if cfg.LRCLIB.RateLimit != 5 {
		t.Errorf("Expected RateLimit 5, got %v", cfg.LRCLIB.RateLimit)
	}
	if cfg.LRCLIB.Timeout != 5*time.Second {
		t.Errorf("Expected Timeout 5s, got %v", cfg.LRCLIB.Timeout)
	}
	if cfg.LRCLIB.CacheDir != "/tmp/lyrprep-cache" {
		t.Errorf("Expected CacheDir from settings, got %q", cfg.LRCLIB.CacheDir)
	}
	if cfg.LRCLIB.CacheTTL != time.Hour {
		t.Errorf("Expected CacheTTL 1h, got %v", cfg.LRCLIB.CacheTTL)
	}

	// -rate フラグは設定ファイルより優先される
	cfg, err = ParseFetchFlags("lrclib_fetch", []string{"-c", path, "-t", "Song", "-rate", "1"})
	if err != nil {
		t.Fatalf("ParseFetchFlags failed: %v", err)
	}
	if cfg.LRCLIB.RateLimit != 1 {
		t.Errorf("Expected -rate to override settings, got %v", cfg.LRCLIB.RateLimit)
	}
}

func TestParseSettings_InvalidDuration(t *testing.T) {
	settings, err := ParseSettings([]byte("lrclib:\n  timeout: soon\n"))
	if err != nil {
		t.Fatalf("ParseSettings failed: %v", err)
	}

	cfg := DefaultLRCLIBConfig()
	if err := settings.LRCLIB.apply(&cfg, false); !errors.Is(err, ErrParseSettings) {
		t.Fatalf("Expected ErrParseSettings, got %v", err)
	}
}

func TestParseSettings_InvalidYAML(t *testing.T) {
	_, err := ParseSettings([]byte("debug: [unterminated"))
	if !errors.Is(err, ErrParseSettings) {
		t.Fatalf("Expected ErrParseSettings, got %v", err)
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "lyrprep")

	want := "lyrprep version " + Version + "\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestUsageText(t *testing.T) {
	if got := UsageText("lyrprep"); !strings.Contains(got, "lyrprep") || !strings.Contains(got, ".lrc") {
		t.Errorf("Unexpected usage text: %q", got)
	}
	if got := FetchUsageText("lrclib_fetch"); !strings.Contains(got, "-track") || !strings.Contains(got, "-id") {
		t.Errorf("Unexpected fetch usage text: %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	// デバッグモード有効
	logger := NewLoggerWithOutput(true, &buf)
	logger.Debugf("test message %d", 123)
	if !strings.Contains(buf.String(), "test message 123") {
		t.Errorf("Expected debug output to contain 'test message 123', got '%s'", buf.String())
	}

	// デバッグモード無効
	buf.Reset()
	logger = NewLoggerWithOutput(false, &buf)
	logger.Debugf("hidden message")
	if buf.Len() != 0 {
		t.Errorf("Expected no debug output, got '%s'", buf.String())
	}
	logger.Warnf("warning message")
	if !strings.Contains(buf.String(), "warning message") {
		t.Errorf("Expected warning output, got '%s'", buf.String())
	}
}
