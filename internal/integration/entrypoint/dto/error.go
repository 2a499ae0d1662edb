// Package dto defines request and response payloads for the API endpoints.
package dto

// ErrorResponse represents an API error payload.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
