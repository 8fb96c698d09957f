package service

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/lookbusy1344/go-printf/printf"
)

const maxHistory = 500 // cap on retained RunResult entries, oldest dropped first

var serviceLog *log.Logger

func init() {
	if os.Getenv("PRINTFCTL_DEBUG") != "" {
		// Note: file handle intentionally not closed - kept open for process
		// lifetime. The OS reclaims it on exit.
		logPath := filepath.Join(os.TempDir(), "printfctl-service-debug.log")
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600) // #nosec G304 -- fixed filename in temp dir
		if err != nil {
			serviceLog = log.New(os.Stderr, "SERVICE: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		} else {
			serviceLog = log.New(f, "SERVICE: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		}
	} else {
		serviceLog = log.New(io.Discard, "", 0)
	}
}

// Session provides a thread-safe printf engine endpoint shared by the
// API, the TUI debugger, and the playground GUI. Each call to Run
// renders a template against its arguments and records the result in
// a bounded history so a UI can scroll back through past runs.
//
// Lock ordering: Session holds its own mu guarding history and notify;
// printf itself holds no locks of its own, so there is no cross-lock
// ordering concern here.
type Session struct {
	mu      sync.RWMutex
	policy  printf.Policy
	history []RunResult
	notify  NotifyFunc
	out     *OutputWriter
}

// NewSession creates a new printf session with the given engine policy.
func NewSession(policy printf.Policy) *Session {
	s := &Session{policy: policy}
	s.out = NewOutputWriter(&bytes.Buffer{}, func(chunk string) {
		s.mu.RLock()
		n := s.notify
		s.mu.RUnlock()
		if n != nil {
			n(chunk)
		}
	})
	return s
}

// SetNotify installs (or clears, with nil) the callback invoked with
// each chunk of rendered output, letting the API wire this session
// into its broadcaster without the session importing net/http.
func (s *Session) SetNotify(fn NotifyFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Run renders template against args, recording a directive trace and
// appending the outcome to history. It never returns an error itself:
// a rejected template is a normal RunResult with State=error, the way
// a UI expects to display it rather than unwind.
func (s *Session) Run(template string, args []any) RunResult {
	serviceLog.Printf("Run: template=%q argc=%d", template, len(args))

	n, entries, err := printf.Trace(template, args)
	result := RunResult{Template: template}
	for _, e := range entries {
		result.Directives = append(result.Directives, newDirectiveInfo(e))
	}
	if err != nil {
		result.State = StateError
		result.Err = err.Error()
		serviceLog.Printf("Run: error=%v", err)
	} else {
		var buf bytes.Buffer
		if _, werr := printf.Vfprintf(&buf, template, args); werr != nil {
			result.State = StateError
			result.Err = werr.Error()
		} else {
			result.State = StateOK
			result.ByteCount = n
			result.Output = buf.String()
			if _, werr := s.out.Write(buf.Bytes()); werr != nil {
				serviceLog.Printf("Run: notify write error=%v", werr)
			}
		}
	}

	s.mu.Lock()
	s.history = append(s.history, result)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
	s.mu.Unlock()

	return result
}

// History returns a copy of the recorded runs, oldest first.
func (s *Session) History() []RunResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RunResult, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory discards all recorded runs.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Output returns everything written so far and clears the buffer, for
// callers that poll rather than subscribe via SetNotify.
func (s *Session) Output() string {
	return s.out.GetBufferAndClear()
}

// Policy returns the engine policy this session was configured with.
func (s *Session) Policy() printf.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}
