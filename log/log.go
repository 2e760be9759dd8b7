package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(zerolog.WarnLevel).With().Timestamp().Logger()
	logMu sync.Mutex
)

// Init replaces the process logger. Verbose enables debug output.
func Init(w io.Writer, verbose bool) {
	logMu.Lock()
	defer logMu.Unlock()

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	logger = zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// L returns a copy of the current logger so a later Init does not race
// with events already being built.
func L() *zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	l := logger
	return &l
}

func Debug() *zerolog.Event {
	return L().Debug()
}

func Info() *zerolog.Event {
	return L().Info()
}

func Warn() *zerolog.Event {
	return L().Warn()
}

func Error() *zerolog.Event {
	return L().Error()
}
