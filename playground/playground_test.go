package playground

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/lookbusy1344/go-printf/printf"
	"github.com/lookbusy1344/go-printf/service"
)

func newTestPlayground(t *testing.T) *Playground {
	t.Helper()
	testApp := test.NewApp()
	t.Cleanup(testApp.Quit)

	pg := &Playground{
		Session: service.NewSession(printf.DefaultPolicy()),
		App:     testApp,
		Window:  testApp.NewWindow("test"),
	}
	pg.initializeViews()
	pg.buildLayout()
	pg.setupToolbar()
	return pg
}

func TestPlaygroundCreation(t *testing.T) {
	pg := newTestPlayground(t)

	if pg.TemplateEntry == nil {
		t.Error("TemplateEntry not initialized")
	}
	if pg.ArgsEntry == nil {
		t.Error("ArgsEntry not initialized")
	}
	if pg.DirectiveView == nil {
		t.Error("DirectiveView not initialized")
	}
	if pg.OutputView == nil {
		t.Error("OutputView not initialized")
	}
	if pg.HistoryList == nil {
		t.Error("HistoryList not initialized")
	}
	if pg.Toolbar == nil {
		t.Error("Toolbar not initialized")
	}
}

func TestPlaygroundRunTemplateRendersOutput(t *testing.T) {
	pg := newTestPlayground(t)

	pg.TemplateEntry.SetText("%2$s is %1$d")
	pg.ArgsEntry.SetText("30, Dave")
	pg.runTemplate()

	if got := pg.OutputView.Text(); got != "Dave is 30" {
		t.Errorf("output view = %q, want %q", got, "Dave is 30")
	}
	if len(pg.Session.History()) != 1 {
		t.Fatalf("history length = %d, want 1", len(pg.Session.History()))
	}
}

func TestPlaygroundRunTemplateReportsError(t *testing.T) {
	pg := newTestPlayground(t)

	pg.TemplateEntry.SetText("%f")
	pg.ArgsEntry.SetText("1.5")
	pg.runTemplate()

	if !strings.Contains(pg.OutputView.Text(), "error") {
		t.Errorf("output view = %q, want an error message", pg.OutputView.Text())
	}
}

func TestPlaygroundLintReportsIssues(t *testing.T) {
	pg := newTestPlayground(t)

	pg.TemplateEntry.SetText("%d %s")
	pg.ArgsEntry.SetText("1")
	pg.lintTemplate()

	if !strings.Contains(pg.StatusLabel.Text, "TOO_FEW_ARGS") {
		t.Errorf("status = %q, want it to mention TOO_FEW_ARGS", pg.StatusLabel.Text)
	}
}

func TestPlaygroundClearHistory(t *testing.T) {
	pg := newTestPlayground(t)

	pg.TemplateEntry.SetText("%d")
	pg.ArgsEntry.SetText("1")
	pg.runTemplate()
	if len(pg.Session.History()) != 1 {
		t.Fatalf("expected one run before clearing")
	}

	pg.clearHistory()
	if len(pg.Session.History()) != 0 {
		t.Errorf("history length after clear = %d, want 0", len(pg.Session.History()))
	}
}

func TestParseArgList(t *testing.T) {
	cases := []struct {
		raw  string
		want []any
	}{
		{"", nil},
		{"42", []any{int64(42)}},
		{"30, Dave", []any{int64(30), "Dave"}},
		{"0xff", []any{int64(255)}},
	}
	for _, c := range cases {
		got := parseArgList(c.raw)
		if len(got) != len(c.want) {
			t.Fatalf("parseArgList(%q) = %v, want %v", c.raw, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("parseArgList(%q)[%d] = %v, want %v", c.raw, i, got[i], c.want[i])
			}
		}
	}
}
