package pdfdoc

import (
	"fmt"
	"math"
	"strings"
)

// ---------------------------------------------------------------------------
// Units
// ---------------------------------------------------------------------------

// Unit is a physical length unit understood by the encoder.
type Unit string

const (
	UnitPt Unit = "pt"
	UnitMM Unit = "mm"
	UnitCM Unit = "cm"
	UnitIn Unit = "in"
)

// points returns the number of points (1/72 in) in one unit.
func (u Unit) points() (float64, bool) {
	switch u {
	case UnitPt:
		return 1, true
	case UnitMM:
		return 72 / 25.4, true
	case UnitCM:
		return 72 / 2.54, true
	case UnitIn:
		return 72, true
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Page Geometry
// ---------------------------------------------------------------------------

// Margins are measured in the unit of the enclosing Geometry.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns margins of v on all four sides.
func UniformMargins(v float64) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// Geometry describes the page size and margins of a document.
type Geometry struct {
	Unit    Unit
	Width   float64
	Height  float64
	Margins Margins
}

const defaultMarginMM = 25.4 // 1"

// Letter returns US Letter (8.5" x 11") in millimeters with 1" margins.
func Letter() Geometry {
	return Geometry{Unit: UnitMM, Width: 215.9, Height: 279.4, Margins: UniformMargins(defaultMarginMM)}
}

// A4 returns ISO A4 in millimeters with 1" margins.
func A4() Geometry {
	return Geometry{Unit: UnitMM, Width: 210, Height: 297, Margins: UniformMargins(defaultMarginMM)}
}

// Legal returns US Legal (8.5" x 14") in millimeters with 1" margins.
func Legal() Geometry {
	return Geometry{Unit: UnitMM, Width: 215.9, Height: 355.6, Margins: UniformMargins(defaultMarginMM)}
}

// PaperByName looks up a preset by case-insensitive name.
func PaperByName(name string) (Geometry, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "letter":
		return Letter(), true
	case "a4":
		return A4(), true
	case "legal":
		return Legal(), true
	}
	return Geometry{}, false
}

// Landscape returns g with width and height swapped.
func (g Geometry) Landscape() Geometry {
	g.Width, g.Height = g.Height, g.Width
	return g
}

// WithMargins returns g with its margins replaced.
func (g Geometry) WithMargins(m Margins) Geometry {
	g.Margins = m
	return g
}

// Writable returns the size of the area inside the margins.
func (g Geometry) Writable() (width, height float64) {
	m := g.Margins
	return g.Width - m.Left - m.Right, g.Height - m.Top - m.Bottom
}

// Validate reports whether g describes a usable page.
func (g Geometry) Validate() error {
	if _, ok := g.Unit.points(); !ok {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidGeometry, g.Unit)
	}
	if !positive(g.Width) || !positive(g.Height) {
		return fmt.Errorf("%w: page size %gx%g%s", ErrInvalidGeometry, g.Width, g.Height, g.Unit)
	}
	m := g.Margins
	for _, v := range []float64{m.Top, m.Right, m.Bottom, m.Left} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: negative margin %g", ErrInvalidGeometry, v)
		}
	}
	if w, h := g.Writable(); !positive(w) || !positive(h) {
		return fmt.Errorf("%w: margins leave no writable area", ErrInvalidGeometry)
	}
	return nil
}

// fromPoints converts a length in points to the unit of g.
func (g Geometry) fromPoints(pt float64) float64 {
	k, _ := g.Unit.points()
	return pt / k
}

func (g Geometry) fromMillimeters(mm float64) float64 {
	return g.fromPoints(mm * 72 / 25.4)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
