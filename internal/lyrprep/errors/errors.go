// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFileNotFound はファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedExtension は対応していない拡張子の場合のエラー
	ErrUnsupportedExtension = errors.New("only .lrc files are supported")
)

// InputError は入出力関連のエラー
type InputError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError は新しいInputErrorを作成します
func NewInputError(op, path string, err error) *InputError {
	return &InputError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
