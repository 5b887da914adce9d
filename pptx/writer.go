// Package pptx renders slide records into a PPTX (Office Open XML
// Presentation) package. The writer assembles every part of the package
// itself: content types, relationships, presentation, master, layouts,
// theme and one slide part per rendered record.
package pptx

import (
	"archive/zip"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/pridedealer/htmldeck"
)

// Ensure Writer implements htmldeck.DeckWriter at compile time.
var _ htmldeck.DeckWriter = (*Writer)(nil)

// Writer renders slide records into a PPTX file.
type Writer struct {
	theme htmldeck.Theme
}

// Option configures a Writer.
type Option func(*Writer)

// WithTheme overrides the default brand theme.
func WithTheme(theme htmldeck.Theme) Option {
	return func(w *Writer) {
		w.theme = theme
	}
}

// NewWriter creates a Writer with the default brand theme.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{theme: htmldeck.DefaultTheme()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// rendered pairs a slide with its prepared body text and layout choice.
type rendered struct {
	slide       *htmldeck.Slide
	content     string
	titleLayout bool
}

// WriteDeck renders the slides into a PPTX package at path and returns the
// number of slides written. Slides failing the content filter are dropped;
// the first record renders with the title layout when its title asks for
// it. The progress callback observes every input slide in order.
func (w *Writer) WriteDeck(path string, slides []*htmldeck.Slide, progress htmldeck.WriteProgressFunc) (int, error) {
	var prepared []rendered
	for i, s := range slides {
		if !s.Renderable() {
			if progress != nil {
				progress(htmldeck.WriteProgress{Slide: s, Index: i})
			}
			continue
		}
		if err := s.Validate(); err != nil {
			return 0, err
		}

		content := htmldeck.NormalizeContent(s.Content)
		content = htmldeck.TruncateContent(content, htmldeck.MaxContentLength)

		prepared = append(prepared, rendered{
			slide:       s,
			content:     content,
			titleLayout: i == 0 && s.TitleSlide(),
		})

		if progress != nil {
			progress(htmldeck.WriteProgress{Slide: s, Index: i, Written: true})
		}
	}

	if err := w.writePackage(path, prepared); err != nil {
		return 0, err
	}

	return len(prepared), nil
}

// part pairs a package path with its XML document.
type part struct {
	name string
	doc  *etree.Document
}

// writePackage assembles all parts and zips them up at path.
func (w *Writer) writePackage(path string, slides []rendered) error {
	parts := []part{
		{"[Content_Types].xml", contentTypesPart(len(slides))},
		{"_rels/.rels", packageRelsPart()},
		{"docProps/core.xml", corePropsPart()},
		{"docProps/app.xml", appPropsPart(len(slides))},
		{"ppt/presentation.xml", presentationPart(len(slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsPart(len(slides))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterPart()},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsPart()},
		{"ppt/slideLayouts/slideLayout1.xml", titleLayoutPart()},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRelsPart()},
		{"ppt/slideLayouts/slideLayout2.xml", contentLayoutPart()},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", layoutRelsPart()},
		{"ppt/theme/theme1.xml", themePart()},
	}
	for i, r := range slides {
		n := strconv.Itoa(i + 1)
		parts = append(parts,
			part{"ppt/slides/slide" + n + ".xml", w.slidePart(r)},
			part{"ppt/slides/_rels/slide" + n + ".xml.rels", slideRelsPart(r.titleLayout)},
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(f)
	for _, p := range parts {
		entry, err := zw.Create(p.name)
		if err != nil {
			f.Close()
			return fmt.Errorf("adding %s: %w", p.name, err)
		}
		if _, err := p.doc.WriteTo(entry); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// slidePart builds the slide XML for one rendered record.
func (w *Writer) slidePart(r rendered) *etree.Document {
	doc := newPart()
	sld := doc.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", nsDrawingML)
	sld.CreateAttr("xmlns:r", nsRelationships)
	sld.CreateAttr("xmlns:p", nsPresentationML)

	cSld := sld.CreateElement("p:cSld")

	bgPr := cSld.CreateElement("p:bg").CreateElement("p:bgPr")
	solidFill(bgPr, w.theme.Background)
	bgPr.CreateElement("a:effectLst")

	spTree := newSpTree(cSld)
	if r.titleLayout {
		w.addTitleShapes(spTree, r.slide.Title)
	} else {
		w.addContentShapes(spTree, r.slide.Title, r.content)
	}

	sld.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")

	return doc
}

// addTitleShapes lays out the title slide: a centered headline over the
// fixed subtitle block. The extracted body content is not placed here.
func (w *Writer) addTitleShapes(spTree *etree.Element, title string) {
	sp := placeholderShape(spTree, 2, "Title 1", "ctrTitle", "", ctrTitleBox)
	txBody := sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	p := txBody.CreateElement("a:p")
	p.CreateElement("a:pPr").CreateAttr("algn", "ctr")
	addRun(p, title, w.theme.TitleSlideSize, true, w.theme.TitleColor)

	sp = placeholderShape(spTree, 3, "Subtitle 2", "subTitle", "1", subtitleBox)
	txBody = sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	for _, line := range w.theme.SubtitleLines {
		p := txBody.CreateElement("a:p")
		p.CreateElement("a:pPr").CreateAttr("algn", "ctr")
		addRun(p, line, w.theme.SubtitleSize, false, w.theme.SubtitleColor)
	}
}

// addContentShapes lays out a content slide: the gold headline and a body
// frame holding one paragraph per content line.
func (w *Writer) addContentShapes(spTree *etree.Element, title, content string) {
	sp := placeholderShape(spTree, 2, "Title 1", "title", "", titleBox)
	txBody := sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	addRun(txBody.CreateElement("a:p"), title, w.theme.TitleSize, true, w.theme.TitleColor)

	sp = placeholderShape(spTree, 3, "Content Placeholder 2", "", "1", bodyBox)
	txBody = sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	for _, line := range strings.Split(content, "\n") {
		w.addBodyParagraph(txBody, line)
	}
}

// addBodyParagraph appends one body paragraph. Every paragraph gets the
// body spacing after it; lines starting with the bullet marker additionally
// get space before and the smaller bullet size.
func (w *Writer) addBodyParagraph(txBody *etree.Element, line string) {
	bulleted := strings.HasPrefix(strings.TrimSpace(line), htmldeck.Bullet)

	size := w.theme.BodySize
	if bulleted {
		size = w.theme.BulletSize
	}

	p := txBody.CreateElement("a:p")
	pPr := p.CreateElement("a:pPr")
	if bulleted {
		addSpacing(pPr, "a:spcBef", w.theme.BulletSpaceBefore)
	}
	addSpacing(pPr, "a:spcAft", w.theme.BodySpaceAfter)

	if line == "" {
		endPr := p.CreateElement("a:endParaRPr")
		endPr.CreateAttr("sz", strconv.Itoa(size*100))
		solidFill(endPr, w.theme.BodyColor)
		return
	}

	addRun(p, line, size, false, w.theme.BodyColor)
}

// addRun appends a styled text run to the paragraph. The size is in points;
// OOXML stores hundredths.
func addRun(p *etree.Element, text string, size int, bold bool, color htmldeck.Color) {
	r := p.CreateElement("a:r")
	rPr := r.CreateElement("a:rPr")
	rPr.CreateAttr("sz", strconv.Itoa(size*100))
	if bold {
		rPr.CreateAttr("b", "1")
	}
	solidFill(rPr, color)
	r.CreateElement("a:t").SetText(text)
}

// addSpacing appends point spacing before or after a paragraph.
func addSpacing(pPr *etree.Element, tag string, points int) {
	pPr.CreateElement(tag).CreateElement("a:spcPts").CreateAttr("val", strconv.Itoa(points*100))
}

// solidFill appends a solid sRGB fill.
func solidFill(parent *etree.Element, color htmldeck.Color) {
	parent.CreateElement("a:solidFill").CreateElement("a:srgbClr").CreateAttr("val", string(color))
}
