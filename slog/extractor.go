// Package slog provides logging decorators for storelist services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storelist"
)

// Ensure LoggingExtractor implements storelist.Extractor.
var _ storelist.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs block counts per page.
type LoggingExtractor struct {
	next   storelist.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next storelist.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
// Pages whose name and address counts differ are logged at warn level.
func (e *LoggingExtractor) Extract(html string) *storelist.ExtractResult {
	begin := time.Now()
	result := e.next.Extract(html)

	level := slog.LevelInfo
	if result.Dropped() > 0 {
		level = slog.LevelWarn
	}
	e.logger.Log(context.Background(), level, "extract",
		"bytes", len(html),
		"names", result.Names,
		"addresses", result.Addresses,
		"stores", len(result.Stores),
		"dropped", result.Dropped(),
		"duration", time.Since(begin),
	)
	return result
}
