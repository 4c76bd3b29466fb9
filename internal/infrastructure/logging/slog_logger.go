package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/holonet/holonet-backend/internal/domain/ports"
)

// SlogLogger implementa ports.Logger usando slog do stdlib
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger cria um novo logger JSON escrevendo em stdout
func NewSlogLogger(level string) ports.Logger {
	return NewSlogLoggerWithWriter(level, os.Stdout)
}

// NewSlogLoggerWithWriter cria um logger JSON com writer customizado
func NewSlogLoggerWithWriter(level string, w io.Writer) ports.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	return &SlogLogger{logger: slog.New(slog.NewJSONHandler(w, opts))}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) With(args ...any) ports.Logger {
	return &SlogLogger{
		logger: l.logger.With(args...),
	}
}
