package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Logger wraps the zap logger shared by the application. It discards
// everything until Init is called with a destination file; the terminal
// belongs to the TUI.
type Logger struct {
	Log *zap.Logger
}

func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init switches to a production JSON logger writing to path at the given
// level. An empty path keeps the no-op logger.
func (l *Logger) Init(level, path string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl.Named("marks")
	return nil
}

// Sync flushes buffered entries.
func (l *Logger) Sync() {
	_ = l.Log.Sync()
}
