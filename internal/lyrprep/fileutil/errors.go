package fileutil

import "errors"

var (
	// ErrCreateDirectory は出力先ディレクトリの作成に失敗した場合のエラー
	ErrCreateDirectory = errors.New("failed to create output directory")

	// ErrWriteContent は内容の書き込みに失敗した場合のエラー
	ErrWriteContent = errors.New("failed to write content")

	// ErrDecode はUTF-8としての読み込みに失敗した場合のエラー
	ErrDecode = errors.New("failed to decode input as UTF-8")
)
