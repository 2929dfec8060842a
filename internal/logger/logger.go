package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/polkiloo/pricecompare/internal/config"
)

const (
	logFileMaxSizeMB  = 64
	logFileMaxBackups = 7
	logFileMaxAgeDays = 7
)

// New creates a JSON slog.Logger honouring the configured level and log file.
func New(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(output(cfg), &slog.HandlerOptions{Level: cfg.LogLevel}))
}

func output(cfg *config.Config) io.Writer {
	if cfg.LogFile == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Compress:   true,
	}
}
