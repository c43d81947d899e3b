package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text-processor/internal/converter"
)

func newConverterServer() *ConverterServer {
	return NewConverterServer(converter.CreateDefaultManager())
}

func doPaste(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/convert/paste", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	newConverterServer().PasteHandler(rec, req)
	return rec
}

func doUpload(t *testing.T, filename string, content []byte, outputFormat string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("output_format", outputFormat))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/convert/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	newConverterServer().UploadHandler(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestPasteHandlerHTML(t *testing.T) {
	rec := doPaste(t, url.Values{
		"content":       {"# Big Heading\n\nbody text"},
		"output_format": {"html"},
		"title":         {"My Doc"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="My_Doc.html"`, rec.Header().Get("Content-Disposition"))

	page, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1")
	assert.Contains(t, string(page), "<title>My Doc</title>")
}

func TestPasteHandlerPDF(t *testing.T) {
	rec := doPaste(t, url.Values{
		"content":       {"# Heading"},
		"output_format": {"pdf"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Document.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-", rec.Body.String()[:5])
}

func TestPasteHandlerEmptyContent(t *testing.T) {
	rec := doPaste(t, url.Values{
		"content":       {"   \n  "},
		"output_format": {"html"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec).Error, "empty")
}

func TestPasteHandlerInvalidFormat(t *testing.T) {
	rec := doPaste(t, url.Values{
		"content":       {"# hi"},
		"output_format": {"xml"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec).Error, "output_format")
}

func TestUploadHandlerHTML(t *testing.T) {
	rec := doUpload(t, "release notes.md", []byte("# Notes\n\n- item"), "html")

	require.Equal(t, http.StatusOK, rec.Code)

	// Title comes from the filename with its extension stripped.
	assert.Equal(t, `attachment; filename="release_notes.html"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "<title>release notes</title>")
}

func TestUploadHandlerNonUTF8(t *testing.T) {
	rec := doUpload(t, "data.bin", []byte{0xff, 0xfe, 0x00, 0x01, 0x80}, "html")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Distinct from the empty-content error.
	body := errorBody(t, rec)
	assert.Contains(t, body.Error, "UTF-8")
	assert.NotContains(t, body.Error, "empty")
}

func TestUploadHandlerEmptyFile(t *testing.T) {
	rec := doUpload(t, "empty.md", []byte("  \n"), "html")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec).Error, "empty")
}

func TestUploadHandlerInvalidFormat(t *testing.T) {
	rec := doUpload(t, "notes.md", []byte("# hi"), "docx")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertHandlersMethodNotAllowed(t *testing.T) {
	server := newConverterServer()

	for _, path := range []string{"/convert/paste", "/convert/upload"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		if path == "/convert/paste" {
			server.PasteHandler(rec, req)
		} else {
			server.UploadHandler(rec, req)
		}
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
	}
}
