// Package main converts plain text into a paginated PDF document.
// Every input line becomes one line of output, stacked top to bottom in a
// single font; pages are added as the text fills them.
//
// The generated PDF can optionally be emailed via SMTP.
//
// With -paragraphs the input is read as running text instead: words are
// joined into one line per paragraph and paragraphs are separated by a
// blank line.
//
// Usage: linedoc [-config FILE] [-o OUT] [-title TITLE] [-paragraphs] [-mail] [INPUT]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	// Version
	version = "1.0.0"

	// Input
	maxLineBytes = 1 << 20
	tabWidth     = 4
)

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

func main() {
	log.SetFlags(0)
	log.SetPrefix("linedoc: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses args, builds the document from the input and saves it.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("linedoc", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON configuration `file`")
	outPath := fs.String("o", "", "output `file` (default: derived from the title)")
	title := fs.String("title", "", "document title, overrides the configuration")
	paragraphs := fs.Bool("paragraphs", false, "join the words of each paragraph into one line")
	mail := fs.Bool("mail", false, "email the generated PDF")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	if *showVersion {
		fmt.Fprintf(stdout, "linedoc v%s\n", version)
		return nil
	}

	// Load configuration
	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}
	if *title != "" {
		cfg.Title = *title
	}
	if *mail {
		if err := cfg.validateMail(); err != nil {
			return err
		}
	}

	// Open input
	in, closeInput, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	// Lay out the document
	doc, err := cfg.newDocument()
	if err != nil {
		return err
	}
	appendFn := appendInput
	if *paragraphs {
		appendFn = appendParagraphs
	}
	n, err := appendFn(doc, in)
	if err != nil {
		return err
	}

	filename := *outPath
	if filename == "" {
		filename = outputFilename(cfg.Title)
	}
	if err := doc.Save(filename); err != nil {
		return err
	}
	log.Printf("wrote %s (%d lines, %d pages)", filename, n, len(doc.Pages()))

	if !*mail {
		return nil
	}

	// Send via email
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read generated PDF: %w", err)
	}
	if err := sendEmail(cfg, cfg.Title, Attachment{Filename: filepath.Base(filename), Data: data}); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("mailed %s to %s", filepath.Base(filename), cfg.Email.To)
	return nil
}
