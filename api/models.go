package api

import (
	"time"
)

// SessionCreateRequest represents a request to create a new printf session.
type SessionCreateRequest struct {
	RetryShortWrites bool `json:"retryShortWrites,omitempty"`
}

// SessionCreateResponse represents the response from creating a session.
type SessionCreateResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// RunRequest represents a request to render one template against args.
// Args are decoded as plain JSON values (string/float64/bool/null);
// handleRun coerces them into the concrete Go types printf.Vprintf
// expects before invoking the engine.
type RunRequest struct {
	Template string `json:"template"`
	Args     []any  `json:"args"`
}

// RunResponse mirrors service.RunResult for the wire.
type RunResponse struct {
	Template   string                `json:"template"`
	Output     string                `json:"output"`
	ByteCount  int                   `json:"byteCount"`
	Directives []DirectiveResponse   `json:"directives"`
	State      string                `json:"state"`
	Error      string                `json:"error,omitempty"`
}

// DirectiveResponse mirrors service.DirectiveInfo for the wire.
type DirectiveResponse struct {
	Raw       string   `json:"raw"`
	Position  int      `json:"position"`
	Length    string   `json:"length"`
	Type      string   `json:"type"`
	Width     int      `json:"width"`
	Precision int      `json:"precision"`
	Warnings  []string `json:"warnings"`
}

// HistoryResponse lists the runs recorded by a session.
type HistoryResponse struct {
	Runs []RunResponse `json:"runs"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse represents a simple success response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Event represents a WebSocket event envelope.
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// OutputEvent represents streamed console output.
type OutputEvent struct {
	Content string `json:"content"`
}
