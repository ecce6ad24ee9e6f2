// internal/logging/logger.go
package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Setup настраивает slog по умолчанию: текстовый или JSON обработчик с уровнем level.
// Каждый запуск процесса получает session_id.
func Setup(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("session_id", uuid.NewString())
	slog.SetDefault(logger)
	return logger
}

// ForComponent возвращает логгер с меткой подсистемы.
func ForComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

// NewRunID — идентификатор одного забега (от старта до экрана статистики).
func NewRunID() string {
	return uuid.NewString()
}
