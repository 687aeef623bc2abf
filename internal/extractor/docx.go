package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DocxExtractor pulls paragraph text out of the word/document.xml entry of
// a DOCX archive. Formatting, tables and headers are ignored; only running
// text survives.
type DocxExtractor struct{}

// NewDocxExtractor returns a DOCX text extractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract returns document paragraphs joined by newlines, one paragraph per
// line. A file that is not a zip archive or lacks word/document.xml maps to
// ErrCorruptFile.
func (e *DocxExtractor) Extract(_ context.Context, data []byte, filename string) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCorruptFile, filename, err)
	}

	var docEntry *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docEntry = f
			break
		}
	}
	if docEntry == nil {
		return "", fmt.Errorf("%w: %s: missing word/document.xml", ErrCorruptFile, filename)
	}

	rc, err := docEntry.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCorruptFile, filename, err)
	}
	defer rc.Close()

	paragraphs, err := readParagraphs(rc)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCorruptFile, filename, err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// readParagraphs walks the WordprocessingML token stream collecting the
// character data of w:t runs, closing a paragraph at each w:p end tag.
func readParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				line := strings.TrimSpace(current.String())
				current.Reset()
				if line != "" {
					paragraphs = append(paragraphs, line)
				}
			}
		}
	}
	if line := strings.TrimSpace(current.String()); line != "" {
		paragraphs = append(paragraphs, line)
	}
	return paragraphs, nil
}
