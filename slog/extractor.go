// Package slog provides logging decorators for the extraction and deck
// writing services.
package slog

import (
	"log/slog"
	"time"

	"github.com/pridedealer/htmldeck"
)

// Ensure LoggingExtractor implements htmldeck.Extractor.
var _ htmldeck.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   htmldeck.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next htmldeck.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the outcome of the extraction and delegates to the wrapped
// extractor.
func (e *LoggingExtractor) Extract(html string) (slides []*htmldeck.Slide, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"slides", len(slides),
			"duration", time.Since(begin),
			"err", err,
		)
		for _, s := range slides {
			e.logger.Debug("extracted slide",
				"slide", s.Number,
				"title", s.Title,
				"chars", len(s.Content),
				"hash", s.ContentHash,
			)
		}
	}(time.Now())
	return e.next.Extract(html)
}
