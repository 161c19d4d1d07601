package resolve

import (
	"label-translator/internal/logger"
)

// Config holds resolver settings.
type Config struct {
	// CaseInsensitiveMatch folds case when comparing raw values against
	// translation pair inputs.
	CaseInsensitiveMatch bool
	// Logger receives debug dumps for groups flagged Debug.
	Logger logger.ILogger
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		CaseInsensitiveMatch: false,
		Logger:               &logger.NullLogger{},
	}
}

// Option adjusts a Config.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(l logger.ILogger) Option {
	return func(c *Config) {
		c.Logger = logger.OrNull(l)
	}
}

// WithCaseInsensitiveMatch enables case folding for translation pairs.
func WithCaseInsensitiveMatch(enabled bool) Option {
	return func(c *Config) {
		c.CaseInsensitiveMatch = enabled
	}
}
