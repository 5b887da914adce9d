package main

import (
	"context"
	"io"

	"github.com/pridedealer/htmldeck"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `arg:"" optional:"" default:"index.html" help:"HTML presentation to convert"`
	Output string `short:"o" default:"Pride_Dealer_Services_Presentation.pptx" help:"Path of the PPTX file to write"`
	Debug  bool   `help:"Log extraction and rendering details to stderr"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor htmldeck.Extractor
	Deck      htmldeck.DeckWriter
}

// ConvertCmd handles the conversion pipeline.
type ConvertCmd struct {
	Input  string
	Output string
}
