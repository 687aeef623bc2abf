// Package handler contains the HTTP handlers of the extraction service.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/document"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/extractor"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/logger"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/processor"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/types"
)

// ResumeHandler serves the import and view-model endpoints.
type ResumeHandler struct {
	orchestrator *processor.Orchestrator
}

// NewResumeHandler builds the handler over the pipeline orchestrator.
func NewResumeHandler(o *processor.Orchestrator) *ResumeHandler {
	return &ResumeHandler{orchestrator: o}
}

// HandleImport accepts a multipart upload, runs the extraction pipeline and
// returns the raw candidate plus its normalized fragment. Extraction
// quality problems never fail the request; only an unsupported or corrupt
// file does.
func (h *ResumeHandler) HandleImport(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "multipart field 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "cannot open uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "cannot read uploaded file"})
		return
	}

	importID := newImportID()
	log := logger.Logger.With().
		Str("import_id", importID).
		Str("filename", fileHeader.Filename).
		Logger()

	doc := types.RawDocument{
		Data:     data,
		Filename: fileHeader.Filename,
		MIME:     fileHeader.Header.Get("Content-Type"),
	}

	cand, err := h.orchestrator.Run(ctx, doc)
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		log.Info().Msg("rejected unsupported format")
		c.JSON(consts.StatusBadRequest, utils.H{"error": "unsupported document format", "importId": importID})
		return
	case errors.Is(err, extractor.ErrCorruptFile):
		log.Warn().Err(err).Msg("rejected corrupt file")
		c.JSON(consts.StatusUnprocessableEntity, utils.H{"error": "document could not be read", "importId": importID})
		return
	case err != nil:
		log.Error().Err(err).Msg("unexpected pipeline error")
		c.JSON(consts.StatusInternalServerError, utils.H{"error": "internal error", "importId": importID})
		return
	}

	frag := document.Normalize(cand)
	log.Info().Bool("empty", cand.IsEmpty()).Msg("import extracted")
	c.JSON(consts.StatusOK, utils.H{
		"importId":  importID,
		"candidate": cand,
		"fragment":  frag,
	})
}

// HandleViewModel builds the rendering view-model for an arbitrary stored
// document shape posted as JSON.
func (h *ResumeHandler) HandleViewModel(_ context.Context, c *app.RequestContext) {
	var doc map[string]any
	body, err := c.Body()
	if err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "request body must be a JSON object"})
		return
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "request body must be a JSON object"})
		return
	}
	c.JSON(consts.StatusOK, document.BuildViewModel(doc))
}

// HandleHealth reports liveness.
func (h *ResumeHandler) HandleHealth(_ context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"status": "ok"})
}

// newImportID returns a time-ordered request identifier.
func newImportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Must(uuid.NewV4()).String()
	}
	return id.String()
}
