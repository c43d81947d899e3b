// Package api exposes the text services over HTTP
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Service information
const (
	FormatterServiceName = "JSON Formatter & Validator"
	ConverterServiceName = "Markdown Converter API"
	ServiceVersion       = "1.0.0"
)

// listenAndServe starts an HTTP server for the given routes.
func listenAndServe(port int, mux *http.ServeMux, service string) error {
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 300 * time.Second, // Allow for longer conversion times
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("starting API server", "service", service, "port", port)
	return httpServer.ListenAndServe()
}

// healthHandler returns the health status of the service
func healthHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
			Service:   service,
		})
	}
}

// serviceInfoHandler returns information about the service for
// service discovery
func serviceInfoHandler(service string, endpoints []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hostname, _ := os.Hostname()

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"service":   service,
			"version":   ServiceVersion,
			"hostname":  hostname,
			"endpoints": endpoints,
		})
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// responseWithError returns an error response in JSON format
func responseWithError(w http.ResponseWriter, status int, message string, err error) {
	errMsg := message
	if err != nil {
		errMsg = fmt.Sprintf("%s: %v", message, err)
	}

	writeJSON(w, status, ErrorResponse{
		Success: false,
		Error:   errMsg,
	})
}

// servePage serves an embedded HTML page at the root path only.
func servePage(page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
