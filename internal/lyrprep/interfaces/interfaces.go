// Package interfaces はlyrprepの各コマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/models"
	"github.com/shiroemons/go-lyrprep/internal/lyrprep/transform"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
}

// Clipboard はクリップボードへの書き込みのインターフェース
type Clipboard interface {
	WriteAll(text string) error
}

// Transformer は歌詞テキストを変換するインターフェース
type Transformer interface {
	Mode() transform.Mode
	TransformText(text string) string
}

// LyricsSource は外部から歌詞を取得するインターフェース
type LyricsSource interface {
	Search(ctx context.Context, query models.Query) ([]models.Record, error)
	Get(ctx context.Context, id int) (*models.Record, error)
}

// Cache はTTL付きのキーバリューキャッシュのインターフェース
type Cache interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Logger はログ出力のインターフェース
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}
