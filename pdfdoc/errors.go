package pdfdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrSaved is returned by every mutating call on a document that has
	// already been saved or written.
	ErrSaved = errors.New("pdfdoc: document already saved")

	ErrInvalidGeometry = errors.New("pdfdoc: invalid page geometry")
	ErrInvalidFontSize = errors.New("pdfdoc: invalid font size")

	// ErrEncode wraps failures inside the PDF encoder that are not I/O.
	ErrEncode = errors.New("pdfdoc: encode document")
)

// FontLoadError reports a font that the encoder could not resolve.
type FontLoadError struct {
	Family string
	Style  string
	Err    error
}

func (e *FontLoadError) Error() string {
	if e.Style == "" {
		return fmt.Sprintf("pdfdoc: load font %q: %v", e.Family, e.Err)
	}
	return fmt.Sprintf("pdfdoc: load font %q (style %s): %v", e.Family, e.Style, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// IoError reports a failure to create, write or close the output.
// Path is empty when the document was written to a caller supplied stream.
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("pdfdoc: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pdfdoc: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }
