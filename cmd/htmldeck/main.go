package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pridedealer/htmldeck/goquery"
	"github.com/pridedealer/htmldeck/pptx"
	deckslog "github.com/pridedealer/htmldeck/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmldeck"),
		kong.Description("Convert the Pride Dealer Services HTML presentation to a branded PowerPoint deck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags. A bare invocation is valid and converts the
	// default input.
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: goquery.NewExtractor(),
		Deck:      pptx.NewWriter(),
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Extractor = deckslog.NewLoggingExtractor(deps.Extractor, logger)
		deps.Deck = deckslog.NewLoggingDeckWriter(deps.Deck, logger)
	}

	cmd := &ConvertCmd{
		Input:  cli.Input,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}
