package debug

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/malonaz/spendchat/internal/file"
)

var (
	once   sync.Once
	logger *slog.Logger
	opts   Opts
)

// Opts configures the debug logger.
type Opts struct {
	// Path of the log file. Empty discards all logs.
	Path  string
	Level slog.Level
}

// Configure sets the logger options. Must be called before the first GetLogger.
func Configure(o Opts) {
	opts = o
}

// GetLogger returns a singleton slog logger instance.
// If the log file cannot be opened, logs are discarded rather than written to the terminal.
func GetLogger() *slog.Logger {
	once.Do(func() {
		logger = slog.New(slog.NewTextHandler(open(opts.Path), &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.Level <= slog.LevelDebug,
		}))
	})
	return logger
}

func open(path string) io.Writer {
	if path == "" {
		return io.Discard
	}
	if err := file.EnsureDir(path); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return io.Discard
	}
	return f
}
