// Package transform はLRCの行をオーバーレイ用テキストに変換します
package transform

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// TimestampWidth は行頭のタイムスタンプタグの文字数（例: [00:12.340]）
	TimestampWidth = 11

	// SegmentDelimiter は括弧書きのセグメントを分割する区切り文字列
	SegmentDelimiter = " ("

	// SpaceEscape は空白の代わりに出力するエスケープ
	SpaceEscape = `\ \`

	// DashEscape はクリップボードモードで語中のダッシュに使うエスケープ
	DashEscape = `-\`

	// EmDash は途中で切れた歌詞を示す記号
	EmDash = "—"
)

// parenLowerPattern は "(" の直後（空白を挟んでもよい）の小文字にマッチします。
// 空白には U+001C–U+001F と U+0085 も含みます
var parenLowerPattern = regexp.MustCompile(`\([\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*([a-z])`)

// Mode は変換モード
type Mode int

const (
	// ModePlain はファイル出力用の変換
	ModePlain Mode = iota
	// ModeClipboard はクリップボード用の変換（ダッシュ処理あり）
	ModeClipboard
)

// String はモード名を返します
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}

// Transformer は行の並びを出力テキストに変換します。状態を持たないため並行に使用できます
type Transformer struct {
	mode Mode
}

// New は新しいTransformerを作成します
func New(mode Mode) *Transformer {
	return &Transformer{mode: mode}
}

// Mode は変換モードを返します
func (t *Transformer) Mode() Mode {
	return t.mode
}

// TransformText はテキスト全体を行に分割して変換します
func (t *Transformer) TransformText(text string) string {
	return t.Transform(SplitLines(text))
}

// Transform は行の並びを変換し、改行で連結したテキストを返します
func (t *Transformer) Transform(lines []string) string {
	processed := make([]string, 0, len(lines))
	for _, line := range lines {
		if out, ok := t.TransformLine(line); ok {
			processed = append(processed, out)
		}
	}
	return strings.Join(processed, "\n")
}

// TransformLine は1行を変換します。出力に寄与しない行の場合はfalseを返します
func (t *Transformer) TransformLine(line string) (string, bool) {
	segments := t.Segments(line)
	if segments == nil {
		return "", false
	}
	return strings.Join(segments, "\n"), true
}

// Segments は1行を変換済みのセグメントに分割します。行が捨てられる場合はnilを返します
func (t *Transformer) Segments(line string) []string {
	trimmed := TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	payload := StripTimestamp(trimmed)
	if TrimSpace(payload) == "" {
		return nil
	}

	payload = CapitalizeParentheticals(payload)

	parts := strings.Split(payload, SegmentDelimiter)
	for i, part := range parts {
		parts[i] = t.cleanSegment(part)
	}
	return parts
}

// cleanSegment はモードに応じてセグメントの括弧・ダッシュ・空白を処理します
func (t *Transformer) cleanSegment(segment string) string {
	switch t.mode {
	case ModeClipboard:
		segment = strings.ReplaceAll(segment, "(", "")
		segment = strings.ReplaceAll(segment, ")", "")
		if strings.HasSuffix(segment, "-") {
			// 末尾のダッシュのみ置換し、語中のダッシュはそのまま
			segment = strings.TrimSuffix(segment, "-") + EmDash
		} else {
			segment = strings.ReplaceAll(segment, "-", DashEscape)
		}
	default:
		segment = strings.ReplaceAll(segment, ")", "")
	}
	return EscapeSpaces(segment)
}

// StripTimestamp は先頭のタイムスタンプ幅の文字を取り除きます。
// 行がタイムスタンプ幅以下の場合は空文字列を返します
func StripTimestamp(line string) string {
	if utf8.RuneCountInString(line) <= TimestampWidth {
		return ""
	}
	n := 0
	for i := range line {
		if n == TimestampWidth {
			return line[i:]
		}
		n++
	}
	return ""
}

// CapitalizeParentheticals は "(" 直後の小文字を大文字にし、間の空白を詰めます
func CapitalizeParentheticals(s string) string {
	return parenLowerPattern.ReplaceAllStringFunc(s, func(match string) string {
		letter := match[len(match)-1:]
		return "(" + strings.ToUpper(letter)
	})
}

// TrimSpace は前後の空白を取り除きます。
// strings.TrimSpace と異なり、区切り制御文字 U+001C–U+001F も空白として扱います
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// EscapeSpaces は空白をエスケープ表現に置換します
func EscapeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", SpaceEscape)
}

// SplitLines はテキストを行に分割します。\r\n と \r は改行として扱います
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
