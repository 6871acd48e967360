// Package models defines the domain entities and the request/response
// DTOs shared between the handler, service, and store layers.
package models

// APIResponse is the envelope for every successful API response.
//
// Message is omitted when empty (the article listing carries only data).
// Data is always serialized so an empty article list renders as [] and
// not as an absent field.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// APIError is the envelope for client-facing failures produced by
// handlers: auth rejections, conflicts, and internal errors.
//
// Messages is populated only for validation failures and lists every
// failing field at once, in schema order.
type APIError struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

// RouteError is the body of structured 404/405/500 fallback responses.
// Shape: {"error": "...", "message": "..."}.
type RouteError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LoginResponse is the payload of a successful login: the authenticated
// user's public projection plus a freshly issued bearer token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
