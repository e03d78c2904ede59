// Package logging 配置全局 zerolog 日志
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup 把日志输出到 stderr, verbose 时打开 debug 级别
func Setup(verbose bool) {
	SetupWriter(os.Stderr, verbose)
}

func SetupWriter(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	}).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
