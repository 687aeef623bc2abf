package processor

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/extractor"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/ocr"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/tracing"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

var tracer = otel.Tracer("processor")

// Defaults for Settings zero values.
const (
	defaultMinTextLength = 5
	defaultAcceptScore   = 0.6
)

// Components are the pipeline collaborators. Primary and Fallback may both
// be nil (heuristic-only mode); Heuristic and Formats are required.
type Components struct {
	Formats   FormatExtractor
	OCR       OCRClient
	Primary   StructuredExtractor
	Fallback  StructuredExtractor
	Heuristic HeuristicParser
}

// Settings tune the orchestrator.
type Settings struct {
	// MinTextLength is the minimum extracted text length below which no
	// structured extractor runs.
	MinTextLength int
	// AcceptScore is the completeness score at which a primary model
	// result is accepted without consulting the fallback model. Nil means
	// the default; an explicit 0 accepts every primary result.
	AcceptScore *float64
}

// Orchestrator runs one upload through the pipeline. Stateless; safe for
// concurrent use.
type Orchestrator struct {
	comp          Components
	minTextLength int
	acceptScore   float64
	logger        zerolog.Logger
}

// New builds an orchestrator over the given collaborators.
func New(comp Components, settings Settings) *Orchestrator {
	if settings.MinTextLength <= 0 {
		settings.MinTextLength = defaultMinTextLength
	}
	acceptScore := defaultAcceptScore
	if settings.AcceptScore != nil {
		acceptScore = *settings.AcceptScore
	}
	return &Orchestrator{
		comp:          comp,
		minTextLength: settings.MinTextLength,
		acceptScore:   acceptScore,
		logger:        logger.Logger.With().Str("component", "orchestrator").Logger(),
	}
}

// Run extracts a structured candidate from doc. The only errors it returns
// are extractor.ErrUnsupportedFormat and extractor.ErrCorruptFile; every
// failure past text extraction degrades to the heuristic path or to the
// empty candidate, so the result is always renderable.
func (o *Orchestrator) Run(ctx context.Context, doc types.RawDocument) (types.StructuredCandidate, error) {
	ctx, span := tracer.Start(ctx, "orchestrator.run", trace.WithAttributes(
		attribute.String("document.filename", doc.Filename),
		attribute.String("document.mime", doc.MIME),
		attribute.Int("document.size", len(doc.Data)),
	))
	defer span.End()

	text, err := o.extractText(ctx, span, doc)
	if err != nil {
		return types.EmptyCandidate(), err
	}

	if len([]rune(strings.TrimSpace(text))) < o.minTextLength {
		gateErr := NewInsufficientTextError(doc.Filename)
		o.logger.Info().Err(gateErr).Msg("extracted text too short, returning empty candidate")
		tracing.RecordDegraded(span, gateErr, tracing.ErrTypeInsufficientText)
		return types.EmptyCandidate(), nil
	}

	if o.comp.Primary != nil {
		if cand, ok := o.runModelTier(ctx, span, text); ok {
			return cand, nil
		}
	}

	span.AddEvent("heuristic_path")
	return o.comp.Heuristic.Parse(text), nil
}

// extractText routes images to OCR and everything else to the format
// registry. OCR failures degrade to empty text; format failures surface.
func (o *Orchestrator) extractText(ctx context.Context, span trace.Span, doc types.RawDocument) (string, error) {
	if extractor.IsImage(doc.Filename, doc.MIME) {
		if o.comp.OCR == nil {
			span.AddEvent("degraded", trace.WithAttributes(attribute.String("reason", "no_ocr_client")))
			return "", nil
		}
		text, err := o.comp.OCR.Recognize(ctx, doc.Data, doc.MIME)
		if err != nil {
			ocrErr := NewOCRError(doc.Filename, err)
			if errors.Is(err, ocr.ErrUnavailable) {
				o.logger.Info().Str("filename", doc.Filename).Msg("ocr not configured, treating image as empty text")
			} else {
				o.logger.Warn().Err(ocrErr).Msg("ocr failed, degrading to empty text")
			}
			tracing.RecordDegraded(span, ocrErr, tracing.ErrTypeOCR)
			return "", nil
		}
		return text, nil
	}

	text, err := o.comp.Formats.Extract(ctx, doc.Data, doc.Filename)
	if err != nil {
		errType := tracing.ErrTypeCorruptFile
		if errors.Is(err, extractor.ErrUnsupportedFormat) {
			errType = tracing.ErrTypeUnsupportedFormat
		}
		extractErr := NewExtractError(doc.Filename, err)
		tracing.RecordError(span, extractErr, errType)
		return "", extractErr
	}
	return text, nil
}

// runModelTier runs the primary model and, when its score is below the
// acceptance threshold, the fallback model. It reports ok=false when the
// tier failed entirely and the heuristic path should take over. A tie
// between the two scores favors the fallback result.
func (o *Orchestrator) runModelTier(ctx context.Context, span trace.Span, text string) (types.StructuredCandidate, bool) {
	primary, err := o.comp.Primary.Extract(ctx, text)
	if err != nil {
		modelErr := NewModelError("primary", err)
		o.logger.Warn().Err(modelErr).Msg("primary model extraction failed, falling back to heuristics")
		tracing.RecordDegraded(span, modelErr, tracing.ErrTypeModelCall)
		return types.StructuredCandidate{}, false
	}

	primaryScore := CompletenessScore(primary)
	span.AddEvent("primary_scored", trace.WithAttributes(attribute.Float64("score", primaryScore)))
	if primaryScore >= o.acceptScore {
		return primary, true
	}

	if o.comp.Fallback == nil {
		return primary, true
	}

	o.logger.Info().Float64("score", primaryScore).Msg("primary result below threshold, retrying with fallback model")
	fallback, err := o.comp.Fallback.Extract(ctx, text)
	if err != nil {
		modelErr := NewModelError("fallback", err)
		o.logger.Warn().Err(modelErr).Msg("fallback model extraction failed, falling back to heuristics")
		tracing.RecordDegraded(span, modelErr, tracing.ErrTypeModelCall)
		return types.StructuredCandidate{}, false
	}

	fallbackScore := CompletenessScore(fallback)
	span.AddEvent("fallback_scored", trace.WithAttributes(attribute.Float64("score", fallbackScore)))
	if fallbackScore >= primaryScore {
		return fallback, true
	}
	return primary, true
}
