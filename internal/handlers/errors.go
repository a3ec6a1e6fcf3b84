package handlers

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: invalid credentials
	Error string `json:"error"`
}
