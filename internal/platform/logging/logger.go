// Package logging はslogのデフォルトロガーを構成します。
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel はLOG_LEVELの文字列をslog.Levelに変換します。未知の値はINFOになります。
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger はwに出力するロガーを生成します。
// debug の場合は色付きのtintハンドラー、それ以外はJSONハンドラーを使います。
func NewLogger(w io.Writer, level slog.Level, debug bool) *slog.Logger {
	if debug {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup はデフォルトロガーを設定します。
// file が空でなければ標準出力とファイルの両方に書き込みます。戻り値のcloseでファイルを閉じます。
func Setup(level string, debug bool, file string) (closeFn func() error, err error) {
	var w io.Writer = os.Stdout
	closeFn = func() error { return nil }

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, f)
		closeFn = f.Close
	}

	slog.SetDefault(NewLogger(w, ParseLevel(level), debug))
	return closeFn, nil
}
