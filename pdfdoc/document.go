// Package pdfdoc builds paginated PDF documents from lines of text.
//
// A Document stacks lines top to bottom at a tracked cursor using one font
// and size. When the next line would cross the bottom margin a new page is
// started. Lines are never wrapped. The PDF itself is produced by fpdf.
package pdfdoc

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

// ---------------------------------------------------------------------------
// Defaults
// ---------------------------------------------------------------------------

const (
	DefaultFontSize     = 12.0
	DefaultLineMarginMM = 0.5
	DefaultCreator      = "linedoc"
)

// layoutEpsilon absorbs rounding when a line ends exactly on the bottom margin.
const layoutEpsilon = 1e-9

// ---------------------------------------------------------------------------
// Content Model
// ---------------------------------------------------------------------------

// Point is a position in the document's unit, measured from the top-left
// corner of the page.
type Point struct {
	X float64
	Y float64
}

// Line is one placed line of text. X and Y give its baseline.
type Line struct {
	Text   string
	X      float64
	Y      float64
	Family string
	Style  string
	Size   float64
}

// Page holds lines in insertion order.
type Page struct {
	Lines []Line
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

type settings struct {
	lineMargin float64
	author     string
	subject    string
	creator    string
	compress   bool
	created    time.Time
}

// Option customizes a Document at construction.
type Option func(*settings)

// WithLineMargin sets the gap between consecutive lines, in the geometry's unit.
func WithLineMargin(v float64) Option {
	return func(s *settings) { s.lineMargin = v }
}

func WithAuthor(author string) Option {
	return func(s *settings) { s.author = author }
}

func WithSubject(subject string) Option {
	return func(s *settings) { s.subject = subject }
}

func WithCreator(creator string) Option {
	return func(s *settings) { s.creator = creator }
}

// WithCompression toggles compression of page content streams. It is on by default.
func WithCompression(on bool) Option {
	return func(s *settings) { s.compress = on }
}

// WithCreationDate fixes the creation date stored in the document info.
func WithCreationDate(t time.Time) Option {
	return func(s *settings) { s.created = t }
}

// ---------------------------------------------------------------------------
// Document
// ---------------------------------------------------------------------------

// Document accumulates lines and writes them as a PDF. It is not safe for
// concurrent use. Once saved it cannot be modified or saved again.
type Document struct {
	title      string
	geom       Geometry
	font       resolvedFont
	fontSize   float64
	fontHeight float64
	lineMargin float64

	pages  []Page
	cursor Point
	saved  bool

	enc *fpdf.Fpdf
}

// New creates an empty document. The font is resolved immediately and a
// *FontLoadError is returned when that fails.
func New(title string, font Font, fontSize float64, geom Geometry, opts ...Option) (*Document, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if !positive(fontSize) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFontSize, fontSize)
	}

	s := settings{
		lineMargin: geom.fromMillimeters(DefaultLineMarginMM),
		creator:    DefaultCreator,
		compress:   true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.lineMargin < 0 || math.IsNaN(s.lineMargin) {
		return nil, fmt.Errorf("%w: line margin %g", ErrInvalidGeometry, s.lineMargin)
	}

	fontHeight := geom.fromPoints(fontSize)
	if _, h := geom.Writable(); fontHeight > h {
		return nil, fmt.Errorf("%w: %gpt is taller than the writable area", ErrInvalidFontSize, fontSize)
	}

	enc := newEncoder(title, geom, s)
	rf, err := loadFont(enc, font, fontSize)
	if err != nil {
		return nil, err
	}

	d := &Document{
		title:      title,
		geom:       geom,
		font:       rf,
		fontSize:   fontSize,
		fontHeight: fontHeight,
		lineMargin: s.lineMargin,
		pages:      []Page{{}},
		enc:        enc,
	}
	d.cursor = d.home()
	return d, nil
}

// NewDefault creates a Times 12pt document on Letter paper.
func NewDefault(title string, opts ...Option) (*Document, error) {
	return New(title, Times, DefaultFontSize, Letter(), opts...)
}

func (d *Document) home() Point {
	return Point{X: d.geom.Margins.Left, Y: d.geom.Margins.Top}
}

func (d *Document) bottom() float64 {
	return d.geom.Height - d.geom.Margins.Bottom
}

// AppendLine places text at the cursor and advances it by one line. A new
// page is started first when the line would cross the bottom margin.
// Invalid UTF-8 is replaced with U+FFFD.
func (d *Document) AppendLine(text string) error {
	if d.saved {
		return ErrSaved
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "\uFFFD")
	}

	if d.cursor.Y+d.fontHeight > d.bottom()+layoutEpsilon {
		d.pages = append(d.pages, Page{})
		d.cursor = d.home()
	}

	page := &d.pages[len(d.pages)-1]
	page.Lines = append(page.Lines, Line{
		Text:   text,
		X:      d.cursor.X,
		Y:      d.cursor.Y + d.fontHeight,
		Family: d.font.family,
		Style:  d.font.style,
		Size:   d.fontSize,
	})
	d.cursor.X = d.geom.Margins.Left
	d.cursor.Y += d.fontHeight + d.lineMargin
	return nil
}

// AppendLines calls AppendLine for each text in order.
func (d *Document) AppendLines(texts ...string) error {
	for _, t := range texts {
		if err := d.AppendLine(t); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the document to the file at path, creating or truncating it.
// The file is closed on every return path. Write failures are reported as
// *IoError; the state of a partially written file is left to the caller.
// Encoder failures wrap ErrEncode and happen before the file is created.
func (d *Document) Save(path string) (err error) {
	if d.saved {
		return ErrSaved
	}
	d.saved = true

	if err := render(d.enc, d.font, d.fontSize, d.pages); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &IoError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IoError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if werr := write(d.enc, f); werr != nil {
		return &IoError{Op: "write", Path: path, Err: werr}
	}
	return nil
}

// Output writes the document to w. Like Save, it consumes the document.
func (d *Document) Output(w io.Writer) error {
	if d.saved {
		return ErrSaved
	}
	d.saved = true

	if err := render(d.enc, d.font, d.fontSize, d.pages); err != nil {
		return err
	}
	if err := write(d.enc, w); err != nil {
		return &IoError{Op: "write", Err: err}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d *Document) Title() string { return d.title }

func (d *Document) Geometry() Geometry { return d.geom }

// Cursor returns the top-left corner of the next line slot.
func (d *Document) Cursor() Point { return d.cursor }

// Saved reports whether Save or Output has been called.
func (d *Document) Saved() bool { return d.saved }

// Pages returns a copy of the pages laid out so far.
func (d *Document) Pages() []Page {
	pages := make([]Page, len(d.pages))
	for i, p := range d.pages {
		pages[i] = Page{Lines: append([]Line(nil), p.Lines...)}
	}
	return pages
}

// LineCount returns the number of lines on all pages.
func (d *Document) LineCount() int {
	n := 0
	for _, p := range d.pages {
		n += len(p.Lines)
	}
	return n
}

// LinesPerPage returns how many lines fit between the top and bottom margins.
func (d *Document) LinesPerPage() int {
	_, h := d.geom.Writable()
	advance := d.fontHeight + d.lineMargin
	return int(math.Floor((h-d.fontHeight)/advance+layoutEpsilon)) + 1
}
