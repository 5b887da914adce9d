package mock

import "github.com/pridedealer/htmldeck"

var _ htmldeck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmldeck.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*htmldeck.Slide, error)
}

func (e *Extractor) Extract(html string) ([]*htmldeck.Slide, error) {
	return e.ExtractFn(html)
}
