package pdfdoc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/text/encoding/charmap"
)

// Font selects the typeface of a document.
//
// Family names one of the PDF core fonts (courier, helvetica, arial, times,
// symbol, zapfdingbats), one of the embedded Go fonts (go, gomono, gomedium,
// gosmallcaps), or any name when File points at a TrueType font.
// Style is "", "B", "I" or "BI".
type Font struct {
	Family string
	Style  string
	File   string
}

var (
	Times     = Font{Family: "times"}
	Helvetica = Font{Family: "helvetica"}
	Courier   = Font{Family: "courier"}
	GoRegular = Font{Family: "go"}
	GoMono    = Font{Family: "gomono"}
)

var coreFamilies = map[string]string{
	"courier":      "courier",
	"helvetica":    "helvetica",
	"arial":        "helvetica",
	"times":        "times",
	"symbol":       "symbol",
	"zapfdingbats": "zapfdingbats",
}

var goFonts = map[string]map[string][]byte{
	"go": {
		"":   goregular.TTF,
		"B":  gobold.TTF,
		"I":  goitalic.TTF,
		"BI": gobolditalic.TTF,
	},
	"gomono": {
		"":   gomono.TTF,
		"B":  gomonobold.TTF,
		"I":  gomonoitalic.TTF,
		"BI": gomonobolditalic.TTF,
	},
	"gomedium": {
		"":  gomedium.TTF,
		"I": gomediumitalic.TTF,
	},
	"gosmallcaps": {
		"":  gosmallcaps.TTF,
		"I": gosmallcapsitalic.TTF,
	},
}

var (
	errUnknownFamily = errors.New("unknown font family")
	errBadStyle      = errors.New("unsupported style")
)

// normalizeStyle maps any ordering of B and I to "", "B", "I" or "BI".
func normalizeStyle(s string) (string, bool) {
	var bold, italic bool
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'B':
			bold = true
		case 'I':
			italic = true
		default:
			return "", false
		}
	}
	switch {
	case bold && italic:
		return "BI", true
	case bold:
		return "B", true
	case italic:
		return "I", true
	}
	return "", true
}

// textEncoding selects how text is converted before it reaches the encoder.
type textEncoding int

const (
	encWinAnsi textEncoding = iota // core text fonts
	encSymbol                      // Symbol: built-in encoding, Greek mapped
	encBuiltin                     // ZapfDingbats: codes passed through
	encUTF8                        // embedded TrueType fonts
)

// resolvedFont is a font registered with the encoder.
type resolvedFont struct {
	family string
	style  string
	enc    textEncoding
}

func coreEncoding(family string) textEncoding {
	switch family {
	case "symbol":
		return encSymbol
	case "zapfdingbats":
		return encBuiltin
	}
	return encWinAnsi
}

var (
	errNotTrueType = errors.New("not a TrueType font")
	errCFFOpenType = errors.New("CFF-based OpenType fonts are not supported")
)

// checkTrueType looks at the sfnt version tag so that arbitrary files are
// rejected before fpdf's parser sees them.
func checkTrueType(data []byte) error {
	if len(data) < 12 {
		return errNotTrueType
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "true":
		return nil
	case "OTTO":
		return errCFFOpenType
	}
	return errNotTrueType
}

// loadFont registers f with pdf and selects it at the given size.
func loadFont(pdf *fpdf.Fpdf, f Font, size float64) (rf resolvedFont, err error) {
	family := strings.ToLower(strings.TrimSpace(f.Family))
	fail := func(cause error) (resolvedFont, error) {
		return resolvedFont{}, &FontLoadError{Family: f.Family, Style: f.Style, Err: cause}
	}
	if family == "" {
		return fail(errUnknownFamily)
	}
	style, ok := normalizeStyle(f.Style)
	if !ok {
		return fail(errBadStyle)
	}

	// The TrueType parser in fpdf indexes raw tables and can panic on
	// malformed input.
	defer func() {
		if r := recover(); r != nil {
			rf, err = fail(fmt.Errorf("parse font: %v", r))
		}
	}()

	switch {
	case f.File != "":
		data, rerr := os.ReadFile(f.File)
		if rerr != nil {
			return fail(rerr)
		}
		if cerr := checkTrueType(data); cerr != nil {
			return fail(cerr)
		}
		pdf.AddUTF8FontFromBytes(family, style, data)
		rf = resolvedFont{family: family, style: style, enc: encUTF8}
	case goFonts[family] != nil:
		data, ok := goFonts[family][style]
		if !ok {
			return fail(errBadStyle)
		}
		pdf.AddUTF8FontFromBytes(family, style, data)
		rf = resolvedFont{family: family, style: style, enc: encUTF8}
	case coreFamilies[family] != "":
		core := coreFamilies[family]
		rf = resolvedFont{family: core, style: style, enc: coreEncoding(core)}
	default:
		return fail(errUnknownFamily)
	}

	pdf.SetFont(rf.family, rf.style, size)
	if pdf.Err() {
		cause := pdf.Error()
		pdf.ClearError()
		return fail(cause)
	}
	return rf, nil
}

// symbolGreek maps Greek letters to their codes in the Symbol font's
// built-in encoding.
var symbolGreek = map[rune]byte{
	'Α': 'A', 'Β': 'B', 'Χ': 'C', 'Δ': 'D', 'Ε': 'E', 'Φ': 'F', 'Γ': 'G',
	'Η': 'H', 'Ι': 'I', 'ϑ': 'J', 'Κ': 'K', 'Λ': 'L', 'Μ': 'M', 'Ν': 'N',
	'Ο': 'O', 'Π': 'P', 'Θ': 'Q', 'Ρ': 'R', 'Σ': 'S', 'Τ': 'T', 'Υ': 'U',
	'ς': 'V', 'Ω': 'W', 'Ξ': 'X', 'Ψ': 'Y', 'Ζ': 'Z',
	'α': 'a', 'β': 'b', 'χ': 'c', 'δ': 'd', 'ε': 'e', 'φ': 'f', 'γ': 'g',
	'η': 'h', 'ι': 'i', 'ϕ': 'j', 'κ': 'k', 'λ': 'l', 'μ': 'm', 'ν': 'n',
	'ο': 'o', 'π': 'p', 'θ': 'q', 'ρ': 'r', 'σ': 's', 'τ': 't', 'υ': 'u',
	'ϖ': 'v', 'ω': 'w', 'ξ': 'x', 'ψ': 'y', 'ζ': 'z',
}

// encode converts text to the byte string the encoder expects for rf.
// Text fonts use WinAnsiEncoding. Symbol and ZapfDingbats take their
// built-in codes directly, so runes below 256 pass through unchanged.
// Anything that cannot be encoded becomes '?'.
func (rf resolvedFont) encode(text string) string {
	if rf.enc == encUTF8 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		c, ok := rf.encodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (rf resolvedFont) encodeRune(r rune) (byte, bool) {
	switch rf.enc {
	case encSymbol:
		if c, ok := symbolGreek[r]; ok {
			return c, true
		}
		fallthrough
	case encBuiltin:
		if r < 0x100 {
			return byte(r), true
		}
		return 0, false
	}
	return charmap.Windows1252.EncodeRune(r)
}
