package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"linedoc/pdfdoc"
)

// ---------------------------------------------------------------------------
// Input
// ---------------------------------------------------------------------------

// openInput opens the named file, or returns stdin for "" and "-".
func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// appendInput adds every line of r to doc, blank lines included.
// Tabs are expanded to spaces and trailing carriage returns dropped.
func appendInput(doc *pdfdoc.Document, r io.Reader) (int, error) {
	scanner := newLineScanner(r)

	n := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		if err := doc.AppendLine(line); err != nil {
			return n, err
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("failed to read input: %w", err)
	}
	return n, nil
}

// appendParagraphs reads r as running text and adds one line per paragraph.
// Within a paragraph any run of spaces, tabs and single newlines is one word
// break. A run of blank lines ends the paragraph, and consecutive paragraphs
// are separated by an empty line. It returns the number of lines added.
func appendParagraphs(doc *pdfdoc.Document, r io.Reader) (int, error) {
	scanner := newLineScanner(r)

	var words []string
	n := 0
	flush := func() error {
		if len(words) == 0 {
			return nil
		}
		if n > 0 {
			if err := doc.AppendLine(""); err != nil {
				return err
			}
			n++
		}
		if err := doc.AppendLine(strings.Join(words, " ")); err != nil {
			return err
		}
		n++
		words = words[:0]
		return nil
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			if err := flush(); err != nil {
				return n, err
			}
			continue
		}
		words = append(words, fields...)
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("failed to read input: %w", err)
	}
	return n, flush()
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}

// ---------------------------------------------------------------------------
// Output
// ---------------------------------------------------------------------------

// outputFilename derives a file name from the document title.
// Characters other than letters, digits, '-', '_' and '.' become '_'.
func outputFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		}
		return '_'
	}, strings.TrimSpace(title))

	name = strings.Trim(name, "._")
	if name == "" {
		name = "document"
	}
	return name + ".pdf"
}
