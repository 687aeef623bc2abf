// Package extractor turns uploaded résumé files into plain text. One
// extractor per stored format; dispatch is by filename extension with the
// MIME type as a fallback hint.
package extractor

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors of the format stage. These are the only extraction errors
// that surface to the caller; everything downstream of text extraction
// degrades instead of failing.
var (
	// ErrUnsupportedFormat means no extractor handles the file's format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorruptFile means the format was recognized but the bytes could
	// not be parsed as that format.
	ErrCorruptFile = errors.New("unreadable document")
)

// Extractor extracts the plain text of one document format.
type Extractor interface {
	// Extract returns the text content of data. A structurally valid file
	// with no text (a scanned PDF, say) yields "" and a nil error.
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

// Registry holds one extractor per supported format and dispatches uploads
// to the right one.
type Registry struct {
	pdf  Extractor
	docx Extractor
	text Extractor
}

// NewRegistry builds the registry with the default extractors. The context
// is used to initialize the PDF parser.
func NewRegistry(ctx context.Context) (*Registry, error) {
	pdfExt, err := NewPDFExtractor(ctx)
	if err != nil {
		return nil, err
	}
	return &Registry{
		pdf:  pdfExt,
		docx: NewDocxExtractor(),
		text: NewTextExtractor(),
	}, nil
}

// ForFilename returns the extractor responsible for filename, or
// ErrUnsupportedFormat when no extractor claims it.
func (r *Registry) ForFilename(filename string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return r.pdf, nil
	case ".docx":
		return r.docx, nil
	case ".txt":
		return r.text, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Extract dispatches data to the extractor matching filename.
func (r *Registry) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	ext, err := r.ForFilename(filename)
	if err != nil {
		return "", err
	}
	return ext.Extract(ctx, data, filename)
}

// IsImage reports whether the upload is a raster image, which is routed to
// OCR instead of a format extractor.
func IsImage(filename, mime string) bool {
	if strings.HasPrefix(strings.ToLower(mime), "image/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
