package cli

import (
	"log/slog"

	"github.com/aretw0/inquest/internal/logging"
	"github.com/aretw0/inquest/pkg/domain"
)

// createLogger configures the application logger. In debug mode it
// writes to Stderr, separated from the prompt flow on Stdout.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// debugHooks traces the session lifecycle through the logger.
func debugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnAsk:  func(key string) { logger.Debug("asking", "key", key) },
		OnSkip: func(key string) { logger.Debug("skipped", "key", key) },
		OnAnswer: func(key string, a domain.Answer) {
			logger.Debug("answered", "key", key, "kind", a.Kind().String())
		},
		OnRetry: func(key, reason string) {
			logger.Debug("retry", "key", key, "reason", reason)
		},
	}
}
