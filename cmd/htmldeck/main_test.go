package main_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	main "github.com/pridedealer/htmldeck/cmd/htmldeck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presentationHTML = `<!DOCTYPE html>
<html>
<head><title>Pride Dealer Services</title></head>
<body>
<div class="slide">
	<h1>Executive Summary</h1>
	<p>Pride Dealer Services is a national detail and condition reports company serving franchise dealers.</p>
	<ul class="key-facts">
		<li><span class="fact-label">Founded</span><span class="fact-value">2008</span></li>
	</ul>
</div>
<div class="slide">
	<h2>Financial Performance</h2>
	<p>Revenue has grown every year since the company was founded.</p>
	<div class="metric-box">
		<h3>Key Metrics</h3>
		<span class="metric-value">$2.5M</span>
		<span class="metric-label">Annual Revenue</span>
	</div>
	<table class="financial-table">
		<tr><th>Year</th><th>Revenue</th></tr>
		<tr><td>2023</td><td>$1.8M</td></tr>
		<tr><td>2024</td><td>$2.5M</td></tr>
	</table>
</div>
<div class="slide">
	<h2>Thank You</h2>
	<p>Questions?</p>
</div>
</body>
</html>`

// zipNames lists the member names of the archive at path.
func zipNames(t *testing.T, path string) []string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

// readZipPart returns the contents of one member of the archive at path.
func readZipPart(t *testing.T, path, name string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()

		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}

	t.Fatalf("part %s not found in %s", name, path)
	return ""
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "htmldeck")
	assert.Contains(t, stdout.String(), "output")
}

func TestMain_Run_UnknownFlag(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--bogus"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingInput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	input := filepath.Join(t.TempDir(), "missing.html")
	err := m.Run(context.Background(), []string{input}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "not found in current directory")
}

func TestMain_Run_Convert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "presentation.html")
	output := filepath.Join(dir, "deck.pptx")
	require.NoError(t, os.WriteFile(input, []byte(presentationHTML), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input, "-o", output}, &stdout, &stderr)

	require.NoError(t, err)

	console := stdout.String()
	assert.Contains(t, console, "Pride Dealer Services - HTML to PowerPoint Converter")
	assert.Contains(t, console, "Extracted Slide 1: Executive Summary")
	assert.Contains(t, console, "Extracted Slide 2: Financial Performance")
	assert.Contains(t, console, "Extracted Slide 3: Thank You")
	assert.Contains(t, console, "Found 3 slides")
	assert.Contains(t, console, "Created PowerPoint slide: Executive Summary")
	assert.Contains(t, console, "Created PowerPoint slide: Financial Performance")
	assert.Contains(t, console, "Skipping slide 3 - insufficient content")
	assert.Contains(t, console, "Total slides created: 2")

	// The deck holds the two kept slides; the thin one never made it in.
	names := zipNames(t, output)
	assert.Contains(t, names, "ppt/slides/slide1.xml")
	assert.Contains(t, names, "ppt/slides/slide2.xml")
	assert.NotContains(t, names, "ppt/slides/slide3.xml")

	// The first record carries the executive-summary title, so it renders
	// with the title layout.
	slide1 := readZipPart(t, output, "ppt/slides/slide1.xml")
	assert.Contains(t, slide1, "Executive Summary")
	assert.Contains(t, slide1, `type="ctrTitle"`)
	assert.Contains(t, slide1, "Investment Presentation")

	rels1 := readZipPart(t, output, "ppt/slides/_rels/slide1.xml.rels")
	assert.Contains(t, rels1, "slideLayout1.xml")

	slide2 := readZipPart(t, output, "ppt/slides/slide2.xml")
	assert.Contains(t, slide2, "Financial Performance")
	assert.Contains(t, slide2, "• $2.5M - Annual Revenue")
	assert.Contains(t, slide2, "Year | Revenue")
	assert.Contains(t, slide2, "2024 | $2.5M")
}

func TestMain_Run_DefaultInput(t *testing.T) {
	// Changes the working directory, so no t.Parallel here.
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("index.html", []byte(presentationHTML), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), nil, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Parsing index.html...")
	assert.Contains(t, stdout.String(), "Output file: Pride_Dealer_Services_Presentation.pptx")

	_, statErr := os.Stat(filepath.Join(dir, "Pride_Dealer_Services_Presentation.pptx"))
	assert.NoError(t, statErr)
}

func TestMain_Run_Debug(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "presentation.html")
	output := filepath.Join(dir, "deck.pptx")
	require.NoError(t, os.WriteFile(input, []byte(presentationHTML), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input, "-o", output, "--debug"}, &stdout, &stderr)

	require.NoError(t, err)

	logs := stderr.String()
	assert.Contains(t, logs, "extract")
	assert.Contains(t, logs, "slides=3")
	assert.Contains(t, logs, "skipped slide")
	assert.Contains(t, logs, "write deck")
	assert.Contains(t, logs, "written=2")
	assert.Contains(t, logs, "duration=")
}

func TestMain_Run_NoSlides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "empty.html")
	require.NoError(t, os.WriteFile(input, []byte("<html><body><p>Nothing here</p></body></html>"), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{input}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Found 0 slides")
	assert.Contains(t, stderr.String(), "Failed to parse HTML file")
}
