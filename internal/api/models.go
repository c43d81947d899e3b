package api

// FormatRequest represents a JSON formatting request.
// A nil indent falls back to the default width of 4.
type FormatRequest struct {
	Text   string `json:"text"`
	Indent *int   `json:"indent"`
}

// FormatResponse represents the result of a formatting request.
// Parse failures are reported here with success=false, not as an
// HTTP error status.
type FormatResponse struct {
	Success     bool   `json:"success"`
	Formatted   string `json:"formatted,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorLine   *int   `json:"error_line,omitempty"`
	ErrorColumn *int   `json:"error_column,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// ErrorResponse represents a generic error payload
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
