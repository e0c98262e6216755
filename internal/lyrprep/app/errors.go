package app

import "errors"

var (
	// ErrUsage は位置引数の数が正しくない場合のエラー
	ErrUsage = errors.New("exactly one input file is required")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("failed to read input file")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("failed to save output file")

	// ErrClipboard はクリップボードへのコピーに失敗した場合のエラー
	ErrClipboard = errors.New("failed to copy to clipboard")

	// ErrNoSyncedLyrics はタイムスタンプ付きの歌詞が見つからない場合のエラー
	ErrNoSyncedLyrics = errors.New("no synced lyrics found")
)
