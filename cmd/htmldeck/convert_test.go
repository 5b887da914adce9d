package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pridedealer/htmldeck"
	main "github.com/pridedealer/htmldeck/cmd/htmldeck"
	"github.com/pridedealer/htmldeck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput drops a placeholder input file and returns its path. The mocked
// extractor never looks at the contents.
func writeInput(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))
	return path
}

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the banner and per-slide progress", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) ([]*htmldeck.Slide, error) {
				return []*htmldeck.Slide{
					{Number: 1, Title: "Executive Summary", Content: "A national reconditioning company."},
					{Number: 2, Title: "Financial Performance", Content: "Revenue has grown every single year."},
				}, nil
			},
		}
		deck := &mock.DeckWriter{
			WriteDeckFn: func(path string, slides []*htmldeck.Slide, progress htmldeck.WriteProgressFunc) (int, error) {
				for i, s := range slides {
					progress(htmldeck.WriteProgress{Slide: s, Index: i, Written: true})
				}
				return len(slides), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: extractor,
			Deck:      deck,
		}

		cmd := &main.ConvertCmd{Input: writeInput(t), Output: "deck.pptx"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Pride Dealer Services - HTML to PowerPoint Converter")
		assert.Contains(t, output, "============")
		assert.Contains(t, output, "Parsing ")
		assert.Contains(t, output, "Extracted Slide 1: Executive Summary")
		assert.Contains(t, output, "Extracted Slide 2: Financial Performance")
		assert.Contains(t, output, "Found 2 slides")
		assert.Contains(t, output, "Creating PowerPoint presentation...")
		assert.Contains(t, output, "Created PowerPoint slide: Executive Summary")
		assert.Contains(t, output, "PowerPoint presentation saved as: deck.pptx")
		assert.Contains(t, output, "Total slides created: 2")
		assert.Contains(t, output, "Conversion completed successfully!")
		assert.Contains(t, output, "Output file: deck.pptx")
	})

	t.Run("prints a skip line for dropped slides", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) ([]*htmldeck.Slide, error) {
				return []*htmldeck.Slide{
					{Number: 1, Title: "Executive Summary", Content: "A national reconditioning company."},
					{Number: 2, Title: "Thank You", Content: ""},
				}, nil
			},
		}
		deck := &mock.DeckWriter{
			WriteDeckFn: func(path string, slides []*htmldeck.Slide, progress htmldeck.WriteProgressFunc) (int, error) {
				progress(htmldeck.WriteProgress{Slide: slides[0], Index: 0, Written: true})
				progress(htmldeck.WriteProgress{Slide: slides[1], Index: 1})
				return 1, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: extractor,
			Deck:      deck,
		}

		cmd := &main.ConvertCmd{Input: writeInput(t), Output: "deck.pptx"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Skipping slide 2 - insufficient content")
		assert.Contains(t, output, "Total slides created: 1")
	})

	t.Run("fails when the input file is missing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.ConvertCmd{Input: filepath.Join(t.TempDir(), "missing.html"), Output: "deck.pptx"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, htmldeck.ENOTFOUND, htmldeck.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found in current directory")
	})

	t.Run("fails when no slides are found", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) ([]*htmldeck.Slide, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.ConvertCmd{Input: writeInput(t), Output: "deck.pptx"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, htmldeck.EINVALID, htmldeck.ErrorCode(err))
		assert.Contains(t, stdout.String(), "Found 0 slides")
		assert.Contains(t, stderr.String(), "Failed to parse HTML file")
	})

	t.Run("propagates extraction errors", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) ([]*htmldeck.Slide, error) {
				return nil, htmldeck.Errorf(htmldeck.EINVALID, "failed to parse HTML")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Extractor: extractor,
		}

		cmd := &main.ConvertCmd{Input: writeInput(t), Output: "deck.pptx"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: failed to parse HTML")
	})

	t.Run("propagates deck writing errors", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) ([]*htmldeck.Slide, error) {
				return []*htmldeck.Slide{
					{Number: 1, Title: "Executive Summary", Content: "A national reconditioning company."},
				}, nil
			},
		}
		deck := &mock.DeckWriter{
			WriteDeckFn: func(path string, slides []*htmldeck.Slide, progress htmldeck.WriteProgressFunc) (int, error) {
				return 0, htmldeck.Errorf(htmldeck.EINTERNAL, "disk full")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Extractor: extractor,
			Deck:      deck,
		}

		cmd := &main.ConvertCmd{Input: writeInput(t), Output: "deck.pptx"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error writing deck:")
	})
}
