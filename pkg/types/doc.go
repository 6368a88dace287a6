// Package types holds the request and response bodies exchanged with the
// GreenLoop backend. They are field bags: the backend owns every invariant,
// the client only checks that required fields are present when response
// validation is enabled.
package types

// Object is a loosely typed JSON object the backend returns as a dict.
type Object = map[string]any

// MessageResponse is the {"message": "..."} acknowledgement many mutations return.
type MessageResponse struct {
	Message string `json:"message"`
	Success *bool  `json:"success,omitempty"`
}
