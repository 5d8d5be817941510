package models

import (
	"agripulse-terminal/internal/engine"
	"agripulse-terminal/internal/view"
)

// StateResponse is the full engine surface exposed to the presentation layer:
// the per-query request states plus the derived views for whatever payloads
// are currently held.
type StateResponse struct {
	State     engine.Snapshot     `json:"state"`
	Terminal  *view.TerminalView  `json:"terminal,omitempty"`
	Dashboard *view.DashboardView `json:"dashboard,omitempty"`
}

// AckResponse acknowledges an imperative trigger.
type AckResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes an error with a stable code and readable message.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
