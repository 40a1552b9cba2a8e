package pdfdoc

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// ---------------------------------------------------------------------------
// PDF Encoding
// ---------------------------------------------------------------------------

// newEncoder creates an fpdf instance for the given page geometry.
// Page breaks are decided by Document, so fpdf's own auto break is off.
func newEncoder(title string, geom Geometry, s settings) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        string(geom.Unit),
		Size:           fpdf.SizeType{Wd: geom.Width, Ht: geom.Height},
	})
	m := geom.Margins
	pdf.SetMargins(m.Left, m.Top, m.Right)
	pdf.SetAutoPageBreak(false, m.Bottom)
	pdf.SetCompression(s.compress)

	pdf.SetTitle(title, true)
	if s.author != "" {
		pdf.SetAuthor(s.author, true)
	}
	if s.subject != "" {
		pdf.SetSubject(s.subject, true)
	}
	if s.creator != "" {
		pdf.SetCreator(s.creator, true)
	}
	if !s.created.IsZero() {
		pdf.SetCreationDate(s.created)
	}
	return pdf
}

// render replays all pages into pdf and completes the document in memory.
// Every page is emitted, so an empty document still has one blank page.
// Errors raised inside fpdf are reported as ErrEncode; nothing has been
// written at that point.
func render(pdf *fpdf.Fpdf, font resolvedFont, size float64, pages []Page) error {
	for _, page := range pages {
		pdf.AddPage()
		pdf.SetFont(font.family, font.style, size)
		for _, line := range page.Lines {
			pdf.Text(line.X, line.Y, font.encode(line.Text))
		}
	}
	pdf.Close()
	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrEncode, pdf.Error())
	}
	return nil
}

// write copies a rendered document to w.
func write(pdf *fpdf.Fpdf, w io.Writer) error {
	return pdf.Output(w)
}
