package htmldeck

import "fmt"

// Slide represents the content extracted from one slide container in the
// source presentation.
type Slide struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the slide contains invalid fields.
func (s *Slide) Validate() error {
	if s.Number < 1 {
		return Errorf(EINVALID, "slide number must be positive")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "slide title required")
	}
	return nil
}

// FallbackTitle returns the placeholder title used when the slide container
// at 1-based position n carries no heading element.
func FallbackTitle(n int) string {
	return fmt.Sprintf("Slide %d", n)
}

// Extractor extracts slide records from presentation HTML.
type Extractor interface {
	// Extract walks every slide container in document order and returns one
	// Slide per container, numbered from 1. Returns EINVALID if the HTML
	// cannot be parsed.
	Extract(html string) ([]*Slide, error)
}
