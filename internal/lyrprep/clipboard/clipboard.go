// Package clipboard はシステムのクリップボードへの書き込みを提供します
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported はクリップボードが利用できない環境の場合のエラー
var ErrUnsupported = errors.New("system clipboard is not available")

// System はOSのクリップボードを使用する実装
type System struct {
	unsupported bool
}

// NewSystem は新しいSystemを作成します
func NewSystem() *System {
	return &System{unsupported: clipboard.Unsupported}
}

// WriteAll はクリップボードのテキストを置き換えます
func (s *System) WriteAll(text string) error {
	if s.unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
