package mock

import "github.com/pridedealer/htmldeck"

var _ htmldeck.DeckWriter = (*DeckWriter)(nil)

// DeckWriter is a mock implementation of htmldeck.DeckWriter.
type DeckWriter struct {
	WriteDeckFn func(path string, slides []*htmldeck.Slide, progress htmldeck.WriteProgressFunc) (int, error)
}

func (w *DeckWriter) WriteDeck(path string, slides []*htmldeck.Slide, progress htmldeck.WriteProgressFunc) (int, error) {
	return w.WriteDeckFn(path, slides, progress)
}
