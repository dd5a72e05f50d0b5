package models

import "encoding/json"

// APIResponse is the backend's uniform envelope: {success, message, data}.
// Data is kept raw so each client call can decode it into its own type.
type APIResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ProvincesResponse is the payload of GET /api/{category}/provinces
type ProvincesResponse struct {
	Success bool                `json:"success"`
	Data    map[string][]string `json:"data"`
}
