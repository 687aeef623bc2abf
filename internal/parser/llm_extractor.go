package parser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

// ErrModelCall wraps every failure of the model-backed extractor: transport
// errors, timeouts, unparseable output and schema violations. Callers treat
// them all the same way and fall back to the heuristic path.
var ErrModelCall = errors.New("model extraction failed")

const defaultModelTimeout = 45 * time.Second

const extractionSystemPrompt = `Tu es un assistant d'extraction de CV. Analyse le texte du CV fourni et renvoie UNIQUEMENT un objet JSON, sans aucun texte autour, avec exactement cette structure:
{
  "personal": {"firstName": "", "lastName": "", "email": "", "phone": "", "jobTitle": "", "address": "", "city": "", "website": "", "linkedin": "", "nationality": "", "birthDate": "", "birthPlace": "", "driving": ""},
  "profile": {"summary": ""},
  "education": [{"degree": "", "school": "", "field": "", "city": "", "startDate": "", "endDate": "", "description": ""}],
  "experience": [{"jobTitle": "", "company": "", "city": "", "startDate": "", "endDate": "", "description": ""}],
  "skills": [{"name": "", "level": 3}],
  "languages": [{"name": "", "level": "Courant"}],
  "interests": [{"name": ""}]
}
Règles: les dates sont au format AAAA-MM-JJ, AAAA-MM ou AAAA. Le niveau d'une compétence est un entier de 1 à 5. Le niveau d'une langue est l'un de: Débutant, Intermédiaire, Courant, Bilingue, Natif. Dans les descriptions, une ligne par réalisation. Omets les champs inconnus, n'invente jamais de contenu.`

// candidateSchemaJSON validates the decoded model output before it is
// trusted. Deliberately loose on item internals; the lenient candidate
// decoding absorbs string-form list entries.
const candidateSchemaJSON = `{
  "type": "object",
  "properties": {
    "personal": {"type": "object"},
    "profile": {"type": "object"},
    "education": {"type": "array", "items": {"type": ["object", "string"]}},
    "experience": {"type": "array", "items": {"type": ["object", "string"]}},
    "skills": {"type": "array", "items": {"type": ["object", "string"]}},
    "languages": {"type": "array", "items": {"type": ["object", "string"]}},
    "interests": {"type": "array", "items": {"type": ["object", "string"]}}
  }
}`

var jsonFenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ModelExtractor asks a chat model for a structured candidate and validates
// the answer against a JSON schema. One instance per model identifier.
type ModelExtractor struct {
	chatModel model.BaseChatModel
	schema    *jsonschema.Schema
	timeout   time.Duration
	logger    zerolog.Logger
}

// ModelExtractorOption customizes a ModelExtractor.
type ModelExtractorOption func(*ModelExtractor)

// WithModelTimeout bounds a single extraction call.
func WithModelTimeout(d time.Duration) ModelExtractorOption {
	return func(e *ModelExtractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewModelExtractor builds an extractor on top of chatModel.
func NewModelExtractor(chatModel model.BaseChatModel, opts ...ModelExtractorOption) (*ModelExtractor, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("candidate.json", strings.NewReader(candidateSchemaJSON)); err != nil {
		return nil, fmt.Errorf("register candidate schema: %w", err)
	}
	compiled, err := compiler.Compile("candidate.json")
	if err != nil {
		return nil, fmt.Errorf("compile candidate schema: %w", err)
	}

	e := &ModelExtractor{
		chatModel: chatModel,
		schema:    compiled,
		timeout:   defaultModelTimeout,
		logger:    logger.Logger.With().Str("component", "model_extractor").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract runs one model call over text. All failures wrap ErrModelCall.
func (e *ModelExtractor) Extract(ctx context.Context, text string) (types.StructuredCandidate, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	messages := []*schema.Message{
		schema.SystemMessage(extractionSystemPrompt),
		schema.UserMessage(text),
	}

	resp, err := e.chatModel.Generate(callCtx, messages)
	if err != nil {
		return types.EmptyCandidate(), fmt.Errorf("%w: %v", ErrModelCall, err)
	}

	raw := extractJSON(resp.Content)
	if raw == "" {
		e.logger.Warn().Str("content", truncateForLog(resp.Content)).Msg("model response carries no JSON object")
		return types.EmptyCandidate(), fmt.Errorf("%w: response carries no JSON object", ErrModelCall)
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return types.EmptyCandidate(), fmt.Errorf("%w: malformed JSON: %v", ErrModelCall, err)
	}
	if err := e.schema.Validate(decoded); err != nil {
		e.logger.Warn().Err(err).Msg("model output violates the candidate schema")
		return types.EmptyCandidate(), fmt.Errorf("%w: schema violation: %v", ErrModelCall, err)
	}

	cand := types.EmptyCandidate()
	if err := json.Unmarshal([]byte(raw), &cand); err != nil {
		return types.EmptyCandidate(), fmt.Errorf("%w: decode candidate: %v", ErrModelCall, err)
	}
	return cand, nil
}

// extractJSON pulls the first JSON object out of a model response, trying a
// fenced code block first and falling back to a brace-level scan.
func extractJSON(content string) string {
	if m := jsonFenceRe.FindStringSubmatch(content); len(m) == 2 {
		candidate := strings.TrimSpace(m[1])
		if strings.HasPrefix(candidate, "{") {
			return candidate
		}
	}

	start := strings.Index(content, "{")
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start : i+1]
			}
		}
	}
	return ""
}

func truncateForLog(s string) string {
	if len(s) <= 200 {
		return s
	}
	return s[:200] + "..."
}
