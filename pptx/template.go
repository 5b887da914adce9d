package pptx

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/pridedealer/htmldeck"
)

// XML namespaces used in PPTX packages.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDublinCore     = "http://purl.org/dc/elements/1.1/"
)

// Relationship types.
const (
	relTypeOfficeDocument = nsRelationships + "/officeDocument"
	relTypeExtendedProps  = nsRelationships + "/extended-properties"
	relTypeSlideMaster    = nsRelationships + "/slideMaster"
	relTypeSlideLayout    = nsRelationships + "/slideLayout"
	relTypeSlide          = nsRelationships + "/slide"
	relTypeTheme          = nsRelationships + "/theme"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
)

// Content types.
const (
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML          = "application/xml"
	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Canvas size in EMUs for a 10 x 7.5 inch deck.
const (
	slideWidth  = 9144000
	slideHeight = 6858000
)

// Slide master and layout IDs live in the range PowerPoint reserves for
// design elements; slide IDs count up from 256.
const (
	masterID        int64 = 2147483648
	titleLayoutID   int64 = 2147483649
	contentLayoutID int64 = 2147483650
	firstSlideID    int64 = 256
)

// box is a placeholder frame on the canvas, in EMUs.
type box struct {
	x, y, cx, cy int
}

// Placeholder frames for the two layouts in use.
var (
	titleBox    = box{457200, 274638, 8229600, 1143000}
	bodyBox     = box{457200, 1600200, 8229600, 4525963}
	ctrTitleBox = box{685800, 2130425, 7772400, 1470025}
	subtitleBox = box{1371600, 3886200, 6400800, 1752600}
)

// newPart returns a document carrying the XML declaration shared by every
// part in the package.
func newPart() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

// rel describes one entry of a relationships part.
type rel struct {
	id      string
	relType string
	target  string
}

// relsPart builds a relationships part from the given entries.
func relsPart(rels []rel) *etree.Document {
	doc := newPart()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsPackageRels)
	for _, r := range rels {
		el := root.CreateElement("Relationship")
		el.CreateAttr("Id", r.id)
		el.CreateAttr("Type", r.relType)
		el.CreateAttr("Target", r.target)
	}
	return doc
}

// contentTypesPart declares the content type of every part in a package
// holding slideCount slides.
func contentTypesPart(slideCount int) *etree.Document {
	doc := newPart()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	addDefault := func(extension, contentType string) {
		el := types.CreateElement("Default")
		el.CreateAttr("Extension", extension)
		el.CreateAttr("ContentType", contentType)
	}
	addOverride := func(partName, contentType string) {
		el := types.CreateElement("Override")
		el.CreateAttr("PartName", partName)
		el.CreateAttr("ContentType", contentType)
	}

	addDefault("rels", ctRels)
	addDefault("xml", ctXML)

	addOverride("/ppt/presentation.xml", ctPresentation)
	addOverride("/ppt/slideMasters/slideMaster1.xml", ctSlideMaster)
	addOverride("/ppt/slideLayouts/slideLayout1.xml", ctSlideLayout)
	addOverride("/ppt/slideLayouts/slideLayout2.xml", ctSlideLayout)
	addOverride("/ppt/theme/theme1.xml", ctTheme)
	for i := 1; i <= slideCount; i++ {
		addOverride("/ppt/slides/slide"+strconv.Itoa(i)+".xml", ctSlide)
	}
	addOverride("/docProps/core.xml", ctCoreProps)
	addOverride("/docProps/app.xml", ctAppProps)

	return doc
}

// packageRelsPart links the package root to the presentation and the
// document properties.
func packageRelsPart() *etree.Document {
	return relsPart([]rel{
		{"rId1", relTypeOfficeDocument, "ppt/presentation.xml"},
		{"rId2", relTypeCoreProps, "docProps/core.xml"},
		{"rId3", relTypeExtendedProps, "docProps/app.xml"},
	})
}

// presentationPart lists the slide master and the slides, and fixes the
// canvas size.
func presentationPart(slideCount int) *etree.Document {
	doc := newPart()
	pres := doc.CreateElement("p:presentation")
	pres.CreateAttr("xmlns:a", nsDrawingML)
	pres.CreateAttr("xmlns:r", nsRelationships)
	pres.CreateAttr("xmlns:p", nsPresentationML)

	masterLst := pres.CreateElement("p:sldMasterIdLst")
	masterEl := masterLst.CreateElement("p:sldMasterId")
	masterEl.CreateAttr("id", strconv.FormatInt(masterID, 10))
	masterEl.CreateAttr("r:id", "rId1")

	slideLst := pres.CreateElement("p:sldIdLst")
	for i := 0; i < slideCount; i++ {
		el := slideLst.CreateElement("p:sldId")
		el.CreateAttr("id", strconv.FormatInt(firstSlideID+int64(i), 10))
		el.CreateAttr("r:id", "rId"+strconv.Itoa(i+2))
	}

	sldSz := pres.CreateElement("p:sldSz")
	sldSz.CreateAttr("cx", strconv.Itoa(slideWidth))
	sldSz.CreateAttr("cy", strconv.Itoa(slideHeight))

	notesSz := pres.CreateElement("p:notesSz")
	notesSz.CreateAttr("cx", strconv.Itoa(slideHeight))
	notesSz.CreateAttr("cy", strconv.Itoa(slideWidth))

	return doc
}

// presentationRelsPart links the presentation to its master and slides. The
// relationship IDs mirror presentationPart: rId1 is the master, slides
// follow from rId2.
func presentationRelsPart(slideCount int) *etree.Document {
	rels := []rel{{"rId1", relTypeSlideMaster, "slideMasters/slideMaster1.xml"}}
	for i := 0; i < slideCount; i++ {
		rels = append(rels, rel{
			id:      "rId" + strconv.Itoa(i+2),
			relType: relTypeSlide,
			target:  "slides/slide" + strconv.Itoa(i+1) + ".xml",
		})
	}
	return relsPart(rels)
}

// slideMasterPart builds the single slide master. Styling lives on the
// slides themselves, so the master only carries the required scaffolding,
// the color map and the layout list.
func slideMasterPart() *etree.Document {
	doc := newPart()
	master := doc.CreateElement("p:sldMaster")
	master.CreateAttr("xmlns:a", nsDrawingML)
	master.CreateAttr("xmlns:r", nsRelationships)
	master.CreateAttr("xmlns:p", nsPresentationML)

	cSld := master.CreateElement("p:cSld")
	newSpTree(cSld)

	clrMap := master.CreateElement("p:clrMap")
	for _, attr := range [][2]string{
		{"bg1", "lt1"}, {"tx1", "dk1"}, {"bg2", "lt2"}, {"tx2", "dk2"},
		{"accent1", "accent1"}, {"accent2", "accent2"}, {"accent3", "accent3"},
		{"accent4", "accent4"}, {"accent5", "accent5"}, {"accent6", "accent6"},
		{"hlink", "hlink"}, {"folHlink", "folHlink"},
	} {
		clrMap.CreateAttr(attr[0], attr[1])
	}

	layoutLst := master.CreateElement("p:sldLayoutIdLst")
	for i, id := range []int64{titleLayoutID, contentLayoutID} {
		el := layoutLst.CreateElement("p:sldLayoutId")
		el.CreateAttr("id", strconv.FormatInt(id, 10))
		el.CreateAttr("r:id", "rId"+strconv.Itoa(i+1))
	}

	return doc
}

// slideMasterRelsPart links the master to its layouts and theme.
func slideMasterRelsPart() *etree.Document {
	return relsPart([]rel{
		{"rId1", relTypeSlideLayout, "../slideLayouts/slideLayout1.xml"},
		{"rId2", relTypeSlideLayout, "../slideLayouts/slideLayout2.xml"},
		{"rId3", relTypeTheme, "../theme/theme1.xml"},
	})
}

// titleLayoutPart builds the title layout: a centered title over a subtitle.
func titleLayoutPart() *etree.Document {
	doc, spTree := newLayout("title", "Title Slide")
	emptyPlaceholder(spTree, 2, "Title 1", "ctrTitle", "", ctrTitleBox)
	emptyPlaceholder(spTree, 3, "Subtitle 2", "subTitle", "1", subtitleBox)
	return doc
}

// contentLayoutPart builds the title-and-content layout.
func contentLayoutPart() *etree.Document {
	doc, spTree := newLayout("obj", "Title and Content")
	emptyPlaceholder(spTree, 2, "Title 1", "title", "", titleBox)
	emptyPlaceholder(spTree, 3, "Content Placeholder 2", "", "1", bodyBox)
	return doc
}

// newLayout builds the shared slide layout scaffolding and returns the
// document together with its shape tree.
func newLayout(layoutType, name string) (*etree.Document, *etree.Element) {
	doc := newPart()
	layout := doc.CreateElement("p:sldLayout")
	layout.CreateAttr("xmlns:a", nsDrawingML)
	layout.CreateAttr("xmlns:r", nsRelationships)
	layout.CreateAttr("xmlns:p", nsPresentationML)
	layout.CreateAttr("type", layoutType)
	layout.CreateAttr("preserve", "1")

	cSld := layout.CreateElement("p:cSld")
	cSld.CreateAttr("name", name)
	spTree := newSpTree(cSld)

	layout.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")

	return doc, spTree
}

// layoutRelsPart links a layout back to the master. Both layouts share it.
func layoutRelsPart() *etree.Document {
	return relsPart([]rel{
		{"rId1", relTypeSlideMaster, "../slideMasters/slideMaster1.xml"},
	})
}

// slideRelsPart links a slide to its layout.
func slideRelsPart(titleLayout bool) *etree.Document {
	target := "../slideLayouts/slideLayout2.xml"
	if titleLayout {
		target = "../slideLayouts/slideLayout1.xml"
	}
	return relsPart([]rel{{"rId1", relTypeSlideLayout, target}})
}

// themePart builds the brand theme. Slides color their text explicitly, so
// the scheme mostly matters to editors opening the deck afterwards.
func themePart() *etree.Document {
	doc := newPart()
	theme := doc.CreateElement("a:theme")
	theme.CreateAttr("xmlns:a", nsDrawingML)
	theme.CreateAttr("name", "Pride Dealer Services")

	elements := theme.CreateElement("a:themeElements")

	clrScheme := elements.CreateElement("a:clrScheme")
	clrScheme.CreateAttr("name", "Pride Dealer Services")
	sysColor := func(tag, val, lastClr string) {
		el := clrScheme.CreateElement(tag).CreateElement("a:sysClr")
		el.CreateAttr("val", val)
		el.CreateAttr("lastClr", lastClr)
	}
	srgbColor := func(tag string, color htmldeck.Color) {
		clrScheme.CreateElement(tag).CreateElement("a:srgbClr").CreateAttr("val", string(color))
	}
	sysColor("a:dk1", "windowText", "000000")
	sysColor("a:lt1", "window", "FFFFFF")
	srgbColor("a:dk2", htmldeck.DarkBlue)
	srgbColor("a:lt2", htmldeck.LightGray)
	srgbColor("a:accent1", htmldeck.BrandGold)
	srgbColor("a:accent2", htmldeck.BrandDark)
	srgbColor("a:accent3", htmldeck.AccentBlue)
	srgbColor("a:accent4", htmldeck.SurfaceBlue)
	srgbColor("a:accent5", htmldeck.LightGray)
	srgbColor("a:accent6", htmldeck.White)
	srgbColor("a:hlink", htmldeck.BrandGold)
	srgbColor("a:folHlink", htmldeck.BrandDark)

	fontScheme := elements.CreateElement("a:fontScheme")
	fontScheme.CreateAttr("name", "Office")
	for _, tag := range []string{"a:majorFont", "a:minorFont"} {
		font := fontScheme.CreateElement(tag)
		typeface := "Calibri"
		if tag == "a:majorFont" {
			typeface = "Calibri Light"
		}
		font.CreateElement("a:latin").CreateAttr("typeface", typeface)
		font.CreateElement("a:ea").CreateAttr("typeface", "")
		font.CreateElement("a:cs").CreateAttr("typeface", "")
	}

	fmtScheme := elements.CreateElement("a:fmtScheme")
	fmtScheme.CreateAttr("name", "Office")

	fillStyleLst := fmtScheme.CreateElement("a:fillStyleLst")
	for i := 0; i < 3; i++ {
		fillStyleLst.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}

	lnStyleLst := fmtScheme.CreateElement("a:lnStyleLst")
	for _, width := range []string{"6350", "12700", "19050"} {
		ln := lnStyleLst.CreateElement("a:ln")
		ln.CreateAttr("w", width)
		ln.CreateAttr("cap", "flat")
		ln.CreateAttr("cmpd", "sng")
		ln.CreateAttr("algn", "ctr")
		ln.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
		ln.CreateElement("a:prstDash").CreateAttr("val", "solid")
	}

	effectStyleLst := fmtScheme.CreateElement("a:effectStyleLst")
	for i := 0; i < 3; i++ {
		effectStyleLst.CreateElement("a:effectStyle").CreateElement("a:effectLst")
	}

	bgFillStyleLst := fmtScheme.CreateElement("a:bgFillStyleLst")
	for i := 0; i < 3; i++ {
		bgFillStyleLst.CreateElement("a:solidFill").CreateElement("a:schemeClr").CreateAttr("val", "phClr")
	}

	return doc
}

// corePropsPart fills in the package metadata.
func corePropsPart() *etree.Document {
	doc := newPart()
	props := doc.CreateElement("cp:coreProperties")
	props.CreateAttr("xmlns:cp", nsCoreProps)
	props.CreateAttr("xmlns:dc", nsDublinCore)

	props.CreateElement("dc:title").SetText("Pride Dealer Services Investment Presentation")
	props.CreateElement("dc:creator").SetText("htmldeck")
	props.CreateElement("cp:lastModifiedBy").SetText("htmldeck")

	return doc
}

// appPropsPart fills in the application metadata.
func appPropsPart(slideCount int) *etree.Document {
	doc := newPart()
	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", nsExtendedProps)

	props.CreateElement("Application").SetText("htmldeck")
	props.CreateElement("Slides").SetText(strconv.Itoa(slideCount))
	props.CreateElement("PresentationFormat").SetText("On-screen Show (4:3)")

	return doc
}

// newSpTree appends the group-shape scaffolding every shape tree carries.
func newSpTree(cSld *etree.Element) *etree.Element {
	spTree := cSld.CreateElement("p:spTree")

	nv := spTree.CreateElement("p:nvGrpSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nv.CreateElement("p:cNvGrpSpPr")
	nv.CreateElement("p:nvPr")

	spTree.CreateElement("p:grpSpPr")

	return spTree
}

// placeholderShape appends a placeholder shape and returns it so callers can
// attach a text body. phType may be empty for the plain body placeholder,
// which is identified by its index alone.
func placeholderShape(spTree *etree.Element, id int, name, phType, idx string, frame box) *etree.Element {
	sp := spTree.CreateElement("p:sp")

	nv := sp.CreateElement("p:nvSpPr")
	cNvPr := nv.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", name)
	nv.CreateElement("p:cNvSpPr").CreateElement("a:spLocks").CreateAttr("noGrp", "1")
	ph := nv.CreateElement("p:nvPr").CreateElement("p:ph")
	if phType != "" {
		ph.CreateAttr("type", phType)
	}
	if idx != "" {
		ph.CreateAttr("idx", idx)
	}

	xfrm := sp.CreateElement("p:spPr").CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.Itoa(frame.x))
	off.CreateAttr("y", strconv.Itoa(frame.y))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.Itoa(frame.cx))
	ext.CreateAttr("cy", strconv.Itoa(frame.cy))

	return sp
}

// emptyPlaceholder appends a placeholder with the empty text body layouts
// are required to carry.
func emptyPlaceholder(spTree *etree.Element, id int, name, phType, idx string, frame box) {
	sp := placeholderShape(spTree, id, name, phType, idx, frame)
	txBody := sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:p")
}
