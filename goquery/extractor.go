// Package goquery extracts slide records from the presentation HTML using
// CSS selectors against the document's fixed markup vocabulary.
package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/pridedealer/htmldeck"
)

// minParagraphLength filters out stray short paragraphs such as labels and
// captions. The comparison is strict: a paragraph must be longer than this.
const minParagraphLength = 10

// Ensure Extractor implements htmldeck.Extractor at compile time.
var _ htmldeck.Extractor = (*Extractor)(nil)

// Extractor extracts slide records from presentation HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract walks every div.slide container in document order and returns one
// slide record per container, numbered from 1.
func (e *Extractor) Extract(html string) ([]*htmldeck.Slide, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, htmldeck.Errorf(htmldeck.EINVALID, "failed to parse HTML: %v", err)
	}

	var slides []*htmldeck.Slide
	doc.Find("div.slide").Each(func(i int, sel *goquery.Selection) {
		slides = append(slides, extractSlide(i+1, sel))
	})

	return slides, nil
}

// extractSlide builds the record for one slide container. The content rules
// are additive and run in a fixed order; nothing deduplicates their output,
// so text matched by several rules appears once per rule.
func extractSlide(n int, slide *goquery.Selection) *htmldeck.Slide {
	title := extractTitle(n, slide)

	var parts []string
	parts = append(parts, paragraphs(slide, title)...)
	parts = append(parts, metricBoxes(slide)...)
	parts = append(parts, keyFacts(slide)...)
	parts = append(parts, plainLists(slide)...)
	parts = append(parts, financialTables(slide)...)
	parts = append(parts, partnershipSections(slide)...)

	content := strings.Join(parts, "\n")

	return &htmldeck.Slide{
		Number:      n,
		Title:       title,
		Content:     content,
		ContentHash: hashContent(content),
	}
}

// extractTitle returns the trimmed text of the first h1 or h2 in the
// container. The fallback applies only when no heading element exists; a
// heading with blank text still counts as found and yields an empty title.
func extractTitle(n int, slide *goquery.Selection) string {
	heading := slide.Find("h1, h2").First()
	if heading.Length() == 0 {
		return htmldeck.FallbackTitle(n)
	}
	return strings.TrimSpace(heading.Text())
}

// paragraphs collects every descendant paragraph that is not blank, not a
// repeat of the resolved title, and longer than minParagraphLength.
// Paragraphs inside metric boxes also match here and appear a second time,
// bulleted, via the metric-box rule.
func paragraphs(slide *goquery.Selection, title string) []string {
	var parts []string
	slide.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if text != "" && text != title && utf8.RuneCountInString(text) > minParagraphLength {
			parts = append(parts, text)
		}
	})
	return parts
}

// metricBoxes emits, per div.metric-box: a heading line from the box's first
// h3 when one exists, one bullet per positionally paired metric value and
// label, and one bullet per box paragraph longer than minParagraphLength.
// Unpaired values or labels are dropped.
func metricBoxes(slide *goquery.Selection) []string {
	var parts []string
	slide.Find("div.metric-box").Each(func(_ int, box *goquery.Selection) {
		parts = append(parts, headingLine(box)...)

		values := texts(box.Find("span.metric-value"))
		labels := texts(box.Find("span.metric-label"))
		for i := 0; i < len(values) && i < len(labels); i++ {
			parts = append(parts, bullet(values[i]+" - "+labels[i]))
		}

		box.Find("p").Each(func(_ int, p *goquery.Selection) {
			text := strings.TrimSpace(p.Text())
			if text != "" && utf8.RuneCountInString(text) > minParagraphLength {
				parts = append(parts, bullet(text))
			}
		})
	})
	return parts
}

// keyFacts emits one bullet per list item of every ul.key-facts. Items
// carrying both a fact-label and a fact-value span become "label: value"
// bullets; any other non-blank item is bulleted as-is.
func keyFacts(slide *goquery.Selection) []string {
	var parts []string
	slide.Find("ul.key-facts").Each(func(_ int, facts *goquery.Selection) {
		facts.Find("li").Each(func(_ int, item *goquery.Selection) {
			if line, ok := factLine(item); ok {
				parts = append(parts, line)
				return
			}
			if text := strings.TrimSpace(item.Text()); text != "" {
				parts = append(parts, bullet(text))
			}
		})
	})
	return parts
}

// plainLists emits one bullet per non-blank item of every ul that is not a
// key-facts list. Items already starting with the bullet marker are skipped
// rather than double-bulleted.
func plainLists(slide *goquery.Selection) []string {
	var parts []string
	slide.Find("ul").Each(func(_ int, list *goquery.Selection) {
		if list.HasClass("key-facts") {
			return
		}
		list.Find("li").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if text != "" && !strings.HasPrefix(text, htmldeck.Bullet) {
				parts = append(parts, bullet(text))
			}
		})
	})
	return parts
}

// financialTables renders every table.financial-table as text: a fixed
// "Financial Data:" heading, the th cells joined with " | ", a dash rule
// matching the header line's length, and one joined line per data row. The
// first tr in the table is always treated as the header row and skipped.
func financialTables(slide *goquery.Selection) []string {
	var parts []string
	slide.Find("table.financial-table").Each(func(_ int, table *goquery.Selection) {
		parts = append(parts, "\nFinancial Data:")

		if headers := texts(table.Find("th")); len(headers) > 0 {
			header := strings.Join(headers, " | ")
			parts = append(parts, header)
			parts = append(parts, strings.Repeat("-", utf8.RuneCountInString(header)))
		}

		rows := table.Find("tr")
		if rows.Length() > 1 {
			rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
				if cells := texts(row.Find("td")); len(cells) > 0 {
					parts = append(parts, strings.Join(cells, " | "))
				}
			})
		}
	})
	return parts
}

// partnershipSections emits, per div.partnership-section: a heading line
// from the section's first h3 when one exists, and one "label: value" bullet
// per key-facts item carrying both spans. Items without both spans produce
// nothing here.
func partnershipSections(slide *goquery.Selection) []string {
	var parts []string
	slide.Find("div.partnership-section").Each(func(_ int, section *goquery.Selection) {
		parts = append(parts, headingLine(section)...)

		section.Find("ul.key-facts").Each(func(_ int, facts *goquery.Selection) {
			facts.Find("li").Each(func(_ int, item *goquery.Selection) {
				if line, ok := factLine(item); ok {
					parts = append(parts, line)
				}
			})
		})
	})
	return parts
}

// headingLine returns the "\ntext:" heading for the container's first h3, or
// nothing when the container has no h3.
func headingLine(container *goquery.Selection) []string {
	h3 := container.Find("h3").First()
	if h3.Length() == 0 {
		return nil
	}
	return []string{"\n" + strings.TrimSpace(h3.Text()) + ":"}
}

// factLine formats a list item as a "label: value" bullet when the item
// carries both a fact-label and a fact-value span.
func factLine(item *goquery.Selection) (string, bool) {
	label := item.Find("span.fact-label").First()
	value := item.Find("span.fact-value").First()
	if label.Length() == 0 || value.Length() == 0 {
		return "", false
	}
	return bullet(strings.TrimSpace(label.Text()) + ": " + strings.TrimSpace(value.Text())), true
}

// texts returns the trimmed text of every element in the selection, in
// document order.
func texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, el *goquery.Selection) {
		out = append(out, strings.TrimSpace(el.Text()))
	})
	return out
}

func bullet(text string) string {
	return htmldeck.Bullet + " " + text
}

// hashContent computes a hash of the content using xxhash.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
