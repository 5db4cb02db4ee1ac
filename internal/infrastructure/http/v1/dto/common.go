// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// DataResponse wraps successful payloads.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse carries a human-readable outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}
