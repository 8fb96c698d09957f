package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lookbusy1344/go-printf/api"
)

func testServer() *api.Server {
	return api.NewServer(0)
}

func TestHealthCheck(t *testing.T) {
	server := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("status field = %v, want ok", response["status"])
	}
}

func createSession(t *testing.T, server *api.Server) api.SessionCreateResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create session status = %d, want 201", w.Code)
	}
	var resp api.SessionCreateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestCreateAndListSessions(t *testing.T) {
	server := testServer()
	session := createSession(t, server)
	if session.SessionID == "" {
		t.Fatal("expected non-empty session ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	var resp struct {
		Sessions []string `json:"sessions"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Sessions) != 1 || resp.Sessions[0] != session.SessionID {
		t.Errorf("sessions = %v, want [%s]", resp.Sessions, session.SessionID)
	}
}

func TestRunEndpointRendersTemplate(t *testing.T) {
	server := testServer()
	session := createSession(t, server)

	body, _ := json.Marshal(api.RunRequest{Template: "%2$s %1$d", Args: []any{float64(7), "hi"}})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/session/%s/run", session.SessionID), bytes.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp api.RunResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Output != "hi 7" {
		t.Errorf("output = %q, want %q", resp.Output, "hi 7")
	}
	if resp.State != "ok" {
		t.Errorf("state = %q, want ok", resp.State)
	}
}

func TestRunEndpointReportsEngineError(t *testing.T) {
	server := testServer()
	session := createSession(t, server)

	body, _ := json.Marshal(api.RunRequest{Template: "%f", Args: []any{float64(1.5)}})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/session/%s/run", session.SessionID), bytes.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	var resp api.RunResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.State != "error" || resp.Error == "" {
		t.Errorf("expected an error state, got %+v", resp)
	}
}

func TestDestroySessionThenNotFound(t *testing.T) {
	server := testServer()
	session := createSession(t, server)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/session/"+session.SessionID, nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/session/"+session.SessionID, nil)
	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestLintEndpoint(t *testing.T) {
	server := testServer()

	body, _ := json.Marshal(map[string]any{"template": "%d %s", "argCount": 1})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lint", bytes.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Findings []map[string]any `json:"findings"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Findings) == 0 {
		t.Error("expected at least one lint finding for a too-few-args template")
	}
}
