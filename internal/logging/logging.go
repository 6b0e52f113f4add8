package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Dir returns <user config dir>/tasques/logs.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "tasques", "logs"), nil
}

// Init writes logs to <user config dir>/tasques/logs/tasques.log in text
// format. When the file cannot be opened every record is discarded and the
// error is returned for the caller to report. The closer is never nil.
func Init() (io.Closer, error) {
	logDir, err := Dir()
	if err != nil {
		Discard()
		return io.NopCloser(nil), err
	}
	return InitAtOrDiscard(logDir)
}

// InitAtOrDiscard is InitAt falling back to Discard on failure.
func InitAtOrDiscard(logDir string) (io.Closer, error) {
	closer, err := InitAt(logDir)
	if err != nil {
		Discard()
		return io.NopCloser(nil), err
	}
	return closer, nil
}

// InitAt is Init with an explicit log directory.
func InitAt(logDir string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(logDir, "tasques.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// the TUI owns the terminal, so the standard logger goes to the file too
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard routes every log record nowhere. Init falls back to it when the
// log file cannot be opened so the terminal stays clean.
func Discard() {
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(Logger)
	log.SetOutput(io.Discard)
}
