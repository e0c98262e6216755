// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/interfaces"
)

const (
	// InputExtension は入力として受け付ける拡張子
	InputExtension = ".lrc"

	// OutputExtension は出力ファイルの拡張子
	OutputExtension = ".txt"
)

var (
	// unsafeFilenamePattern はファイル名に使えない文字のパターン
	unsafeFilenamePattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]+`)
)

// HasLRCExtension はパスが .lrc で終わるかどうかを大文字小文字を区別せずに判定します
func HasLRCExtension(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), InputExtension)
}

// DecodeUTF8 はUTF-8のバイト列を文字列に変換します。先頭のBOMは取り除きます
func DecodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}
	ret, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return string(ret), nil
}

// EncodeUTF8 は文字列をUTF-8のバイト列に変換します。withBOMがtrueの場合はBOMを付けます
func EncodeUTF8(content string, withBOM bool) ([]byte, error) {
	if !withBOM {
		return []byte(content), nil
	}
	ret, _, err := transform.Bytes(unicode.UTF8BOM.NewEncoder(), []byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return ret, nil
}

// SaveFile は出力先ディレクトリを作成してからファイルを書き込みます
func SaveFile(fs interfaces.FileSystem, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
		}
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// GenerateOutputPath は入力ファイルと同じ場所に .txt の出力パスを生成します
func GenerateOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	// ".lrc" のようなドットで始まるだけの名前は拡張子として扱わない
	if ext == base {
		return inputPath + OutputExtension
	}
	return strings.TrimSuffix(inputPath, ext) + OutputExtension
}

// GenerateLRCFilename はトラック名から .lrc のファイル名を生成します
func GenerateLRCFilename(track string) string {
	name := strings.TrimSpace(unsafeFilenamePattern.ReplaceAllString(track, "_"))
	if name == "" {
		name = "lyrics"
	}
	return name + InputExtension
}
