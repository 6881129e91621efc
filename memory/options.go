package memory

import "log/slog"

type options struct {
	maxBytes uint64
	logger   *slog.Logger
}

// Option configures an Allocator.
type Option func(*options)

// WithMaxBytes caps the number of live bytes. Zero means unlimited.
func WithMaxBytes(n uint64) Option {
	return func(o *options) {
		o.maxBytes = n
	}
}

// WithLogger sets the logger used for allocation diagnostics.
// Pass nil to disable logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
