package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognizeWithoutCredentials(t *testing.T) {
	// No server: a missing key must short-circuit before any network call.
	c := NewHTTPClient("", WithEndpoint("http://127.0.0.1:1/parse/image"))

	_, err := c.Recognize(context.Background(), []byte{1, 2, 3}, "image/png")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRecognizeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Contains(t, r.PostFormValue("base64Image"), "data:image/png;base64,")
		assert.Equal(t, "fre", r.PostFormValue("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ParsedResults":[{"ParsedText":"Jean Dupont\njean@example.com"}],"IsErroredOnProcessing":false}`))
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", WithEndpoint(srv.URL))
	text, err := c.Recognize(context.Background(), []byte("fake image"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont\njean@example.com", text)
}

func TestRecognizeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ParsedResults":[],"IsErroredOnProcessing":true,"ErrorMessage":["Unable to recognize the file type"]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", WithEndpoint(srv.URL))
	_, err := c.Recognize(context.Background(), []byte("fake image"), "image/png")
	assert.ErrorIs(t, err, ErrFailed)
}

func TestRecognizeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", WithEndpoint(srv.URL))
	_, err := c.Recognize(context.Background(), []byte("fake image"), "image/jpeg")
	assert.ErrorIs(t, err, ErrFailed)
}
