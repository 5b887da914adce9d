package slog

import (
	"log/slog"
	"time"

	"github.com/pridedealer/htmldeck"
)

// Ensure LoggingDeckWriter implements htmldeck.DeckWriter.
var _ htmldeck.DeckWriter = (*LoggingDeckWriter)(nil)

// LoggingDeckWriter wraps a DeckWriter with debug logging.
type LoggingDeckWriter struct {
	next   htmldeck.DeckWriter
	logger *slog.Logger
}

// NewLoggingDeckWriter creates a new LoggingDeckWriter.
func NewLoggingDeckWriter(next htmldeck.DeckWriter, logger *slog.Logger) *LoggingDeckWriter {
	return &LoggingDeckWriter{next: next, logger: logger}
}

// WriteDeck logs the outcome of the deck write and delegates to the wrapped
// writer. Slides dropped by the content filter are logged as they happen via
// the progress callback.
func (w *LoggingDeckWriter) WriteDeck(path string, slides []*htmldeck.Slide, progress htmldeck.WriteProgressFunc) (written int, err error) {
	wrapped := func(p htmldeck.WriteProgress) {
		if !p.Written {
			w.logger.Debug("skipped slide",
				"slide", p.Slide.Number,
				"title", p.Slide.Title,
				"chars", len(p.Slide.Content),
			)
		}
		if progress != nil {
			progress(p)
		}
	}

	defer func(begin time.Time) {
		w.logger.Info("write deck",
			"path", path,
			"slides", len(slides),
			"written", written,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDeck(path, slides, wrapped)
}
