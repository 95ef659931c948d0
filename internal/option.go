package internal

import "log/slog"

// Option is a functional option for configuring the application.
type Option func(*App)

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.Logger = logger
	}
}
