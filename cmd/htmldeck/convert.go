package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pridedealer/htmldeck"
)

// Run executes the conversion pipeline: read the presentation, extract the
// slide records, render the deck.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Pride Dealer Services - HTML to PowerPoint Converter")
	fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))

	if _, err := os.Stat(c.Input); os.IsNotExist(err) {
		fmt.Fprintf(deps.Stderr, "Error: %s not found in current directory\n", c.Input)
		fmt.Fprintln(deps.Stderr, "Hint: run htmldeck from the directory containing the presentation")
		return htmldeck.Errorf(htmldeck.ENOTFOUND, "%s not found", c.Input)
	}

	fmt.Fprintf(deps.Stdout, "Parsing %s...\n", c.Input)

	html, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Input, err)
	}

	slides, err := deps.Extractor.Extract(string(html))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmldeck.ErrorMessage(err))
		return err
	}

	for _, s := range slides {
		fmt.Fprintf(deps.Stdout, "Extracted Slide %d: %s\n", s.Number, s.Title)
	}
	fmt.Fprintf(deps.Stdout, "Found %d slides\n", len(slides))

	if len(slides) == 0 {
		fmt.Fprintln(deps.Stderr, "Failed to parse HTML file")
		return htmldeck.Errorf(htmldeck.EINVALID, "no slides found in %s", c.Input)
	}

	fmt.Fprintln(deps.Stdout, "\nCreating PowerPoint presentation...")

	progress := func(p htmldeck.WriteProgress) {
		if p.Written {
			fmt.Fprintf(deps.Stdout, "Created PowerPoint slide: %s\n", p.Slide.Title)
		} else {
			fmt.Fprintf(deps.Stdout, "Skipping slide %d - insufficient content\n", p.Index+1)
		}
	}

	created, err := deps.Deck.WriteDeck(c.Output, slides, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error writing deck: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nPowerPoint presentation saved as: %s\n", c.Output)
	fmt.Fprintf(deps.Stdout, "Total slides created: %d\n", created)

	fmt.Fprintln(deps.Stdout, "\nConversion completed successfully!")
	fmt.Fprintf(deps.Stdout, "Output file: %s\n", c.Output)

	return nil
}
