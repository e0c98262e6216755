package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger は新しいロガーを作成します。デバッグモードでない場合は警告以上のみ出力します
func NewLogger(debug bool) *logrus.Logger {
	return NewLoggerWithOutput(debug, os.Stderr)
}

// NewLoggerWithOutput は出力先を指定してロガーを作成します
func NewLoggerWithOutput(debug bool, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
