// Package models はlyrprepで使用するデータモデルを定義します
package models

// Query はLRCLIBの検索条件を表します
type Query struct {
	Track  string
	Artist string
	Album  string
}

// Record はLRCLIBの歌詞レコードを表します
type Record struct {
	ID           int     `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"` // 秒
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// HasSyncedLyrics はタイムスタンプ付きの歌詞を持つかどうかを返します
func (r Record) HasSyncedLyrics() bool {
	return r.SyncedLyrics != ""
}

// Result は変換結果の出力先を表します
type Result struct {
	Text        string
	Destination string // 出力ファイルのパス（クリップボードの場合は空）
	Lines       int    // 出力行数
}
