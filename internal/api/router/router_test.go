package router

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniordjimbi1/africacvpro-sub000/internal/api/handler"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/extractor"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/parser"
	"github.com/juniordjimbi1/africacvpro-sub000/internal/processor"
)

func newTestServer(t *testing.T) *server.Hertz {
	t.Helper()

	formats, err := extractor.NewRegistry(context.Background())
	require.NoError(t, err)

	orchestrator := processor.New(processor.Components{
		Formats:   formats,
		Heuristic: parser.NewHeuristicExtractor(),
	}, processor.Settings{})

	h := server.Default()
	Register(h, handler.NewResumeHandler(orchestrator))
	return h
}

func multipartUpload(t *testing.T, filename string, content []byte) (body []byte, contentType string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func TestHealthRoute(t *testing.T) {
	h := newTestServer(t)

	w := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)
	assert.Equal(t, 200, w.Result().StatusCode())
}

func TestImportTextUpload(t *testing.T) {
	h := newTestServer(t)

	body, contentType := multipartUpload(t, "cv.txt",
		[]byte("Jean Dupont\njean.dupont@mail.com\nCompétences\nExcel\nWord"))
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/import",
		&ut.Body{Body: bytes.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: contentType})

	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())

	var payload struct {
		ImportID  string `json:"importId"`
		Candidate struct {
			Personal struct {
				FirstName string `json:"firstName"`
				Email     string `json:"email"`
			} `json:"personal"`
		} `json:"candidate"`
		Fragment struct {
			Skills []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"skills"`
		} `json:"fragment"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &payload))
	assert.NotEmpty(t, payload.ImportID)
	assert.Equal(t, "Jean", payload.Candidate.Personal.FirstName)
	assert.Equal(t, "jean.dupont@mail.com", payload.Candidate.Personal.Email)
	require.Len(t, payload.Fragment.Skills, 2)
	assert.NotEmpty(t, payload.Fragment.Skills[0].ID)
}

func TestImportUnsupportedFormat(t *testing.T) {
	h := newTestServer(t)

	body, contentType := multipartUpload(t, "cv.xlsx", []byte("whatever"))
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/import",
		&ut.Body{Body: bytes.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: contentType})

	assert.Equal(t, 400, w.Result().StatusCode())
}

func TestImportCorruptDocx(t *testing.T) {
	h := newTestServer(t)

	body, contentType := multipartUpload(t, "cv.docx", []byte("not a zip archive"))
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/import",
		&ut.Body{Body: bytes.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: contentType})

	assert.Equal(t, 422, w.Result().StatusCode())
}

func TestImportMissingFileField(t *testing.T) {
	h := newTestServer(t)

	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/import", nil)
	assert.Equal(t, 400, w.Result().StatusCode())
}

func TestImportImageWithoutOCRSucceeds(t *testing.T) {
	h := newTestServer(t)

	body, contentType := multipartUpload(t, "scan.png", []byte{0x89, 'P', 'N', 'G'})
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/import",
		&ut.Body{Body: bytes.NewReader(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: contentType})

	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())

	var payload struct {
		Candidate struct {
			Skills []any `json:"skills"`
		} `json:"candidate"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &payload))
	assert.Empty(t, payload.Candidate.Skills)
}

func TestViewModelRoute(t *testing.T) {
	h := newTestServer(t)

	doc := `{"firstName":"A","personal":{"firstName":"B"},"skills":"oops"}`
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/viewmodel",
		&ut.Body{Body: bytes.NewReader([]byte(doc)), Len: len(doc)},
		ut.Header{Key: "Content-Type", Value: "application/json"})

	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())

	var vm struct {
		FirstName string `json:"firstName"`
		Skills    []any  `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(resp.Body(), &vm))
	assert.Equal(t, "B", vm.FirstName)
	assert.NotNil(t, vm.Skills)
}

func TestViewModelRejectsMalformedJSON(t *testing.T) {
	h := newTestServer(t)

	doc := `not json`
	w := ut.PerformRequest(h.Engine, "POST", "/api/v1/resume/viewmodel",
		&ut.Body{Body: bytes.NewReader([]byte(doc)), Len: len(doc)},
		ut.Header{Key: "Content-Type", Value: "application/json"})

	assert.Equal(t, 400, w.Result().StatusCode())
}
