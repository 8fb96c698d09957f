package debugger

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lookbusy1344/go-printf/printf"
	"github.com/lookbusy1344/go-printf/service"
)

func newTestTUI(t *testing.T) *TUI {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	session := service.NewSession(printf.DefaultPolicy())
	return NewTUIWithScreen(session, screen)
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		raw          string
		wantTemplate string
		wantArgs     []any
	}{
		{"%d", "%d", nil},
		{"%d|42", "%d", []any{int64(42)}},
		{"%2$s %1$d|7,hi", "%2$s %1$d", []any{int64(7), "hi"}},
		{"%#x|0xff", "%#x", []any{int64(255)}},
	}
	for _, c := range cases {
		tmpl, args := parseCommand(c.raw)
		if tmpl != c.wantTemplate {
			t.Errorf("parseCommand(%q) template = %q, want %q", c.raw, tmpl, c.wantTemplate)
		}
		if len(args) != len(c.wantArgs) {
			t.Fatalf("parseCommand(%q) args = %v, want %v", c.raw, args, c.wantArgs)
		}
		for i := range args {
			if args[i] != c.wantArgs[i] {
				t.Errorf("parseCommand(%q) arg[%d] = %v, want %v", c.raw, i, args[i], c.wantArgs[i])
			}
		}
	}
}

func TestExecuteCommandRendersAndUpdatesHistory(t *testing.T) {
	tui := newTestTUI(t)

	tui.executeCommand("%2$s %1$d|7,hi")

	if !strings.Contains(tui.OutputView.GetText(true), "hi 7") {
		t.Errorf("output view = %q, want it to contain %q", tui.OutputView.GetText(true), "hi 7")
	}
	if len(tui.Session.History()) != 1 {
		t.Fatalf("history length = %d, want 1", len(tui.Session.History()))
	}
}

func TestHandleCommandAddsToInputHistory(t *testing.T) {
	tui := newTestTUI(t)

	tui.CommandInput.SetText("%d|1")
	tui.handleCommand(tcell.KeyEnter)

	if tui.History.Size() != 1 {
		t.Fatalf("command history size = %d, want 1", tui.History.Size())
	}
	if tui.CommandInput.GetText() != "" {
		t.Error("expected CommandInput to be cleared after Enter")
	}
}

func TestExecuteCommandReportsEngineError(t *testing.T) {
	tui := newTestTUI(t)

	tui.executeCommand("%f|1")

	if !strings.Contains(tui.OutputView.GetText(true), "error") {
		t.Errorf("output view = %q, want an error message", tui.OutputView.GetText(true))
	}
	history := tui.Session.History()
	if len(history) != 1 || history[0].State != service.StateError {
		t.Fatalf("expected one errored run, got %+v", history)
	}
}
