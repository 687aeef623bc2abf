package processor

import (
	"errors"
	"fmt"
)

// ErrInsufficientText marks extracted text too short to be worth running
// any structured extractor on. Absorbed inside the pipeline, never
// surfaced as a request failure.
var ErrInsufficientText = errors.New("insufficient extracted text")

// Pipeline stage names carried in PipelineError.Op.
const (
	OpFormatExtract = "format_extract"
	OpOCR           = "ocr"
	OpModelExtract  = "model_extract"
	OpTextGate      = "text_gate"
)

// PipelineError ties a failure to the pipeline stage it happened in. The
// base error keeps the sentinel chain intact, so errors.Is against
// extractor/ocr/parser sentinels keeps working through the wrapper.
type PipelineError struct {
	// Op names the pipeline stage, one of the Op constants above.
	Op string
	// BaseErr is the underlying error.
	BaseErr error
	// Detail carries stage-specific context (filename, model tier).
	Detail string
}

func (e *PipelineError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.BaseErr, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.BaseErr)
}

// Unwrap exposes the base error to errors.Is / errors.As.
func (e *PipelineError) Unwrap() error {
	return e.BaseErr
}

// Is matches another *PipelineError. Zero fields on the target act as
// wildcards, so errors.Is(err, &PipelineError{Op: OpOCR}) matches any OCR
// stage failure.
func (e *PipelineError) Is(target error) bool {
	t, ok := target.(*PipelineError)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	if t.BaseErr != nil && !errors.Is(e.BaseErr, t.BaseErr) {
		return false
	}
	return true
}

// NewExtractError wraps a format-stage failure for one file.
func NewExtractError(filename string, base error) *PipelineError {
	return &PipelineError{Op: OpFormatExtract, BaseErr: base, Detail: filename}
}

// NewOCRError wraps an OCR failure for one file.
func NewOCRError(filename string, base error) *PipelineError {
	return &PipelineError{Op: OpOCR, BaseErr: base, Detail: filename}
}

// NewModelError wraps a model-tier failure; tier is "primary" or
// "fallback".
func NewModelError(tier string, base error) *PipelineError {
	return &PipelineError{Op: OpModelExtract, BaseErr: base, Detail: tier}
}

// NewInsufficientTextError marks the short-text short-circuit for one file.
func NewInsufficientTextError(filename string) *PipelineError {
	return &PipelineError{Op: OpTextGate, BaseErr: ErrInsufficientText, Detail: filename}
}
