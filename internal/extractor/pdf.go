package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	einoParser "github.com/cloudwego/eino/components/document/parser"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
)

// pdfParseTimeout bounds a single PDF parse; malformed files can otherwise
// spin the parser for a long time.
const pdfParseTimeout = 30 * time.Second

// PDFExtractor extracts the embedded text layer of PDF files.
type PDFExtractor struct {
	parser *pdf.PDFParser
}

// NewPDFExtractor initializes the underlying PDF parser.
func NewPDFExtractor(ctx context.Context) (*PDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("init pdf parser: %w", err)
	}
	return &PDFExtractor{parser: p}, nil
}

// Extract returns the concatenated text of all pages. A valid PDF without a
// text layer yields "". Parse failures map to ErrCorruptFile.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	parseCtx, cancel := context.WithTimeout(ctx, pdfParseTimeout)
	defer cancel()

	docs, err := e.parser.Parse(parseCtx, bytes.NewReader(data), einoParser.WithURI(filename))
	if err != nil {
		logger.Warn().Err(err).Str("filename", filename).Msg("pdf parse failed")
		return "", fmt.Errorf("%w: %s: %v", ErrCorruptFile, filename, err)
	}

	var sb strings.Builder
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		sb.WriteString(doc.Content)
	}
	return sb.String(), nil
}
