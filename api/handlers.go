package api

import (
	"net/http"

	"github.com/lookbusy1344/go-printf/service"
	"github.com/lookbusy1344/go-printf/tools"
)

// handleCreateSession handles POST /api/v1/session.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionCreateRequest
	if r.ContentLength > 0 {
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	session, err := s.sessions.CreateSession(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, SessionCreateResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	})
}

// handleListSessions handles GET /api/v1/session.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": s.sessions.ListSessions(),
	})
}

// handleGetSessionStatus handles GET /api/v1/session/{id}.
func (s *Server) handleGetSessionStatus(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessionId": session.ID,
		"createdAt": session.CreatedAt,
		"runs":      len(session.Service.History()),
	})
}

// handleDestroySession handles DELETE /api/v1/session/{id}.
func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.sessions.DestroySession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// handleRun handles POST /api/v1/session/{id}/run.
//
// Arguments travel as plain JSON values, so "%n" directives always fail
// here: there is no way to address a caller-owned integer across an
// HTTP boundary the way a Go pointer does in-process. That is a
// protocol limitation, not an engine one; the CLI and TUI, which pass
// real Go arguments, support "%n" fully.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req RunRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	args := coerceJSONArgs(req.Args)
	result := session.Service.Run(req.Template, args)
	writeJSON(w, http.StatusOK, toRunResponse(result))
}

// handleHistory handles GET /api/v1/session/{id}/history.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	history := session.Service.History()
	resp := HistoryResponse{Runs: make([]RunResponse, len(history))}
	for i, run := range history {
		resp.Runs[i] = toRunResponse(run)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleClearHistory handles POST /api/v1/session/{id}/clear.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	session.Service.ClearHistory()
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// handleDrainOutput handles GET /api/v1/session/{id}/output.
func (s *Server) handleDrainOutput(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, OutputEvent{Content: session.Service.Output()})
}

// handleLint handles POST /api/v1/lint: static checks over a
// template+arg-count pair without actually rendering it.
func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Template string `json:"template"`
		ArgCount int    `json:"argCount"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	findings := tools.Lint(req.Template, req.ArgCount)
	writeJSON(w, http.StatusOK, map[string]any{"findings": findings})
}

func toRunResponse(r service.RunResult) RunResponse {
	resp := RunResponse{
		Template:   r.Template,
		Output:     r.Output,
		ByteCount:  r.ByteCount,
		State:      string(r.State),
		Error:      r.Err,
		Directives: make([]DirectiveResponse, len(r.Directives)),
	}
	for i, d := range r.Directives {
		resp.Directives[i] = DirectiveResponse{
			Raw:       d.Raw,
			Position:  d.Position,
			Length:    d.Length,
			Type:      d.Type,
			Width:     d.Width,
			Precision: d.Precision,
			Warnings:  d.Warnings,
		}
	}
	return resp
}

// coerceJSONArgs converts the plain values produced by encoding/json
// (float64, string, bool, nil) into the concrete integer/string shapes
// printf's argument extraction expects. Whole-number floats become
// int64; fractional floats pass through untouched so the engine
// rejects them with ErrArgType itself rather than silently truncating.
func coerceJSONArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if f, ok := a.(float64); ok && f == float64(int64(f)) {
			out[i] = int64(f)
		} else {
			out[i] = a
		}
	}
	return out
}
