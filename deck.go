package htmldeck

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Bullet is the marker prefixed to extracted list and metric lines. Rendered
// lines starting with it are styled as bullet text.
const Bullet = "•"

// Content length rules, counted in characters rather than bytes.
const (
	// MinContentLength is the smallest trimmed content that still renders.
	// The boundary is inclusive: content of exactly this length renders.
	MinContentLength = 20

	// MaxContentLength is the longest content placed on a slide. Anything
	// longer is cut and suffixed with an ellipsis marker.
	MaxContentLength = 1500
)

// Renderable reports whether the slide carries enough content to become a
// deck slide. Slides with blank or short content are dropped entirely.
func (s *Slide) Renderable() bool {
	return utf8.RuneCountInString(strings.TrimSpace(s.Content)) >= MinContentLength
}

// TitleSlide reports whether the slide's title selects the deck's title
// layout. Only the first record in a deck may render with the title layout;
// position is the writer's concern.
func (s *Slide) TitleSlide() bool {
	return strings.Contains(strings.ToLower(s.Title), "executive summary")
}

var newlineRuns = regexp.MustCompile(`\n{3,}`)

// NormalizeContent collapses runs of three or more newlines down to two and
// trims surrounding whitespace.
func NormalizeContent(content string) string {
	return strings.TrimSpace(newlineRuns.ReplaceAllString(content, "\n\n"))
}

// TruncateContent cuts content to at most max characters, appending "..."
// when anything was cut. Content of exactly max characters is returned
// unchanged.
func TruncateContent(content string, max int) string {
	if utf8.RuneCountInString(content) <= max {
		return content
	}
	return string([]rune(content)[:max]) + "..."
}

// WriteProgress reports the outcome for a single slide while a deck is
// written.
type WriteProgress struct {
	Slide *Slide

	// Index is the 0-based position of the slide in the input sequence.
	Index int

	// Written is false when the slide was dropped by the content filter.
	Written bool
}

// WriteProgressFunc is called once per input slide, in order, as a deck is
// written.
type WriteProgressFunc func(progress WriteProgress)

// DeckWriter renders slide records into a presentation file.
type DeckWriter interface {
	// WriteDeck writes one deck slide per renderable input slide to path and
	// returns the number of slides written. The progress callback, when
	// non-nil, is invoked once per input slide including dropped ones.
	WriteDeck(path string, slides []*Slide, progress WriteProgressFunc) (int, error)
}
