package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storelist"
)

// Ensure LoggingStoreWriter implements storelist.StoreWriter.
var _ storelist.StoreWriter = (*LoggingStoreWriter)(nil)

// LoggingStoreWriter wraps a StoreWriter with debug logging.
type LoggingStoreWriter struct {
	next   storelist.StoreWriter
	name   string
	logger *slog.Logger
}

// NewLoggingStoreWriter creates a new LoggingStoreWriter.
// name identifies the sink in log lines, e.g. "csv" or "sqlite".
func NewLoggingStoreWriter(next storelist.StoreWriter, name string, logger *slog.Logger) *LoggingStoreWriter {
	return &LoggingStoreWriter{next: next, name: name, logger: logger}
}

// WriteStores delegates to the wrapped writer and logs the operation.
func (w *LoggingStoreWriter) WriteStores(ctx context.Context, stores []storelist.Store) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write stores",
			"sink", w.name,
			"count", len(stores),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteStores(ctx, stores)
}
