package extractor

import (
	"context"
	"strings"
)

// TextExtractor handles plain-text uploads. The bytes are taken verbatim as
// UTF-8; invalid sequences are replaced, never rejected.
type TextExtractor struct{}

// NewTextExtractor returns a plain-text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract decodes data as UTF-8 text.
func (e *TextExtractor) Extract(_ context.Context, data []byte, _ string) (string, error) {
	return strings.ToValidUTF8(string(data), "�"), nil
}
