package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storelist"
)

// Ensure LoggingSource implements storelist.Source.
var _ storelist.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with debug logging.
type LoggingSource struct {
	next   storelist.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next storelist.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// List delegates to the wrapped source and logs the operation.
func (s *LoggingSource) List(ctx context.Context, dir string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list",
			"dir", dir,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx, dir)
}

// Read delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Read(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, path)
}
