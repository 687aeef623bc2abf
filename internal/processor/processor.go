// Package processor orders the extraction pipeline: format extraction or
// OCR, then the model-backed extractor pair gated by a completeness score,
// then the heuristic extractor as the unconditional last resort.
package processor

import (
	"context"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

// FormatExtractor turns non-image uploads into plain text.
type FormatExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

// OCRClient recovers text from image uploads.
type OCRClient interface {
	Recognize(ctx context.Context, image []byte, mime string) (string, error)
}

// StructuredExtractor produces a structured candidate from plain text via
// an external model.
type StructuredExtractor interface {
	Extract(ctx context.Context, text string) (types.StructuredCandidate, error)
}

// HeuristicParser produces a structured candidate from plain text with no
// I/O; it cannot fail.
type HeuristicParser interface {
	Parse(text string) types.StructuredCandidate
}
