package service

import "github.com/lookbusy1344/go-printf/printf"

// RunState is the lifecycle stage of a single format call, mirrored
// from the engine's internal observability states so the API and TUI
// can render a state machine without importing the printf package's
// unexported state type.
type RunState string

const (
	StateIdle   RunState = "idle"
	StateRun    RunState = "running"
	StateOK     RunState = "ok"
	StateError  RunState = "error"
)

// DirectiveInfo is the UI-facing projection of printf.TraceEntry: the
// same fields, JSON-tagged for the API and renderable as a table row
// by the TUI.
type DirectiveInfo struct {
	Raw       string   `json:"raw"`
	Position  int      `json:"position"`
	Length    string   `json:"length"`
	Type      string   `json:"type"`
	Width     int      `json:"width"`
	Precision int      `json:"precision"`
	Warnings  []string `json:"warnings"`
}

func newDirectiveInfo(e printf.TraceEntry) DirectiveInfo {
	return DirectiveInfo{
		Raw:       e.Raw,
		Position:  e.Position,
		Length:    e.Length.String(),
		Type:      e.Type.String(),
		Width:     e.Width,
		Precision: e.Precision,
		Warnings:  e.Warnings,
	}
}

// RunResult is a complete record of one Run call: the rendered output,
// the directive-by-directive trace, and the outcome.
type RunResult struct {
	Template   string          `json:"template"`
	Output     string          `json:"output"`
	ByteCount  int             `json:"byteCount"`
	Directives []DirectiveInfo `json:"directives"`
	State      RunState        `json:"state"`
	Err        string          `json:"error,omitempty"`
}
