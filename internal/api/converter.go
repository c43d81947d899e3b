package api

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"text-processor/internal/converter"
	"text-processor/internal/model"
	"text-processor/internal/util"
)

//go:embed static/converter.html
var converterPage []byte

// ConverterServer represents the markdown converter service
type ConverterServer struct {
	manager  *converter.Manager
	detector *util.TextDetector
}

// NewConverterServer creates a new converter server
func NewConverterServer(manager *converter.Manager) *ConverterServer {
	return &ConverterServer{
		manager:  manager,
		detector: util.NewTextDetector(),
	}
}

// StartConverterServer initializes routes and starts the HTTP server
func StartConverterServer(port int, manager *converter.Manager) error {
	server := NewConverterServer(manager)

	mux := http.NewServeMux()

	// Register service discovery endpoints
	mux.HandleFunc("/health", healthHandler(ConverterServiceName))
	mux.HandleFunc("/service-info", serviceInfoHandler(ConverterServiceName, []string{
		"/convert/paste",
		"/convert/upload",
	}))

	// Register API endpoints
	mux.HandleFunc("/convert/paste", server.PasteHandler)
	mux.HandleFunc("/convert/upload", server.UploadHandler)
	mux.HandleFunc("/", servePage(converterPage))

	return listenAndServe(port, mux, ConverterServiceName)
}

// PasteHandler handles requests to convert pasted markdown content
func (s *ConverterServer) PasteHandler(w http.ResponseWriter, r *http.Request) {
	// Only support POST method
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Maximum request size (10MB)
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	// The test UI posts multipart form data, but plain form encoding
	// is accepted too.
	if err := r.ParseMultipartForm(10 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		responseWithError(w, http.StatusBadRequest, "Failed to parse form", err)
		return
	}

	content := r.FormValue("content")
	outputFormat := model.OutputFormat(r.FormValue("output_format"))
	title := r.FormValue("title")
	if title == "" {
		title = model.DefaultTitle
	}

	if strings.TrimSpace(content) == "" {
		responseWithError(w, http.StatusBadRequest, "Content cannot be empty", nil)
		return
	}

	if !outputFormat.Valid() {
		responseWithError(w, http.StatusBadRequest, "output_format must be 'html' or 'pdf'", nil)
		return
	}

	document := model.NewDocument("", title, []byte(content))
	s.convert(w, document, outputFormat)
}

// UploadHandler handles requests to convert an uploaded markdown file
func (s *ConverterServer) UploadHandler(w http.ResponseWriter, r *http.Request) {
	// Only support POST method
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Maximum file size (10MB)
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	// Parse the multipart form, 10MB max memory
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		responseWithError(w, http.StatusBadRequest, "Failed to parse form", err)
		return
	}

	outputFormat := model.OutputFormat(r.FormValue("output_format"))
	if !outputFormat.Valid() {
		responseWithError(w, http.StatusBadRequest, "output_format must be 'html' or 'pdf'", nil)
		return
	}

	// Get the file from form data
	file, header, err := r.FormFile("file")
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "Failed to get file from form", err)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "Failed to read file content", err)
		return
	}

	if !s.detector.IsText(fileBytes) {
		responseWithError(w, http.StatusBadRequest, "File must be a valid text file with UTF-8 encoding", nil)
		return
	}

	if strings.TrimSpace(string(fileBytes)) == "" {
		responseWithError(w, http.StatusBadRequest, "File is empty", nil)
		return
	}

	// The filename without its extension becomes the title
	document := model.NewDocument(header.Filename, "", fileBytes)
	s.convert(w, document, outputFormat)
}

// convert renders the document and streams the result back with a
// download filename derived from the title.
func (s *ConverterServer) convert(w http.ResponseWriter, document *model.Document, format model.OutputFormat) {
	result, err := s.manager.Convert(document, format)
	if err != nil {
		responseWithError(w, http.StatusInternalServerError, "Conversion error", err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	w.Header().Set("Content-Type", result.MediaType)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Data); err != nil {
		// We can't return an error to the client at this point
		slog.Error("failed to write response", "error", err, "document", document.ID)
	}
}
