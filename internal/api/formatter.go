package api

import (
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"

	"text-processor/internal/normalizer"
)

//go:embed static/formatter.html
var formatterPage []byte

// FormatterServer represents the JSON formatter service
type FormatterServer struct{}

// NewFormatterServer creates a new formatter server
func NewFormatterServer() *FormatterServer {
	return &FormatterServer{}
}

// StartFormatterServer initializes routes and starts the HTTP server
func StartFormatterServer(port int) error {
	server := NewFormatterServer()

	mux := http.NewServeMux()

	// Register service discovery endpoints
	mux.HandleFunc("/health", healthHandler(FormatterServiceName))
	mux.HandleFunc("/service-info", serviceInfoHandler(FormatterServiceName, []string{
		"/api/format",
	}))

	// Register API endpoints
	mux.HandleFunc("/api/format", server.FormatHandler)
	mux.HandleFunc("/", servePage(formatterPage))

	return listenAndServe(port, mux, FormatterServiceName)
}

// FormatHandler handles requests to format and validate JSON text
func (s *FormatterServer) FormatHandler(w http.ResponseWriter, r *http.Request) {
	// Only support POST method
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Maximum request size (10MB)
	r.Body = http.MaxBytesReader(w, r.Body, 10*1024*1024)

	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responseWithError(w, http.StatusBadRequest, "Failed to decode request body", err)
		return
	}

	indent := normalizer.DefaultIndent
	if req.Indent != nil {
		indent = *req.Indent
	}

	formatted, err := normalizer.Format(req.Text, indent)
	if err != nil {
		// Malformed input is a valid outcome of this endpoint, not an
		// HTTP failure.
		writeJSON(w, http.StatusOK, formatFailure(err))
		return
	}

	writeJSON(w, http.StatusOK, FormatResponse{
		Success:   true,
		Formatted: formatted,
	})
}

// formatFailure maps a normalizer error onto the response contract:
// parse failures carry a position, anything else is message-only.
func formatFailure(err error) FormatResponse {
	var perr *normalizer.ParseError
	if errors.As(err, &perr) {
		line, col := perr.Line, perr.Column
		return FormatResponse{
			Success:     false,
			Error:       "JSON Error: " + perr.Message,
			ErrorLine:   &line,
			ErrorColumn: &col,
		}
	}

	return FormatResponse{
		Success: false,
		Error:   "Error: " + err.Error(),
	}
}
