package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/config"
	lyrerrors "github.com/shiroemons/go-lyrprep/internal/lyrprep/errors"
)

var (
	successColor = lipgloss.Color("10")
	errorColor   = lipgloss.Color("9")
)

// styleFor は出力先の端末に合わせたスタイルを返します
func styleFor(w io.Writer, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().Foreground(color)
}

// printSuccess は完了メッセージを表示します
func printSuccess(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, styleFor(w, successColor).Render(fmt.Sprintf(format, a...)))
}

// PrintError はエラーメッセージを表示します
func PrintError(w io.Writer, name string, err error) {
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(w, config.UsageText(name))
		return
	}
	fmt.Fprintln(w, styleFor(w, errorColor).Render("Error: "+Message(err)))
}

// Message はエラーをユーザー向けのメッセージに変換します
func Message(err error) string {
	var inputErr *lyrerrors.InputError
	switch {
	case errors.Is(err, lyrerrors.ErrFileNotFound) && errors.As(err, &inputErr):
		return fmt.Sprintf("File not found: %s", inputErr.Path)
	case errors.Is(err, lyrerrors.ErrUnsupportedExtension) && errors.As(err, &inputErr):
		return fmt.Sprintf("Only .lrc files are supported. Got: %s", inputErr.Path)
	default:
		return err.Error()
	}
}
