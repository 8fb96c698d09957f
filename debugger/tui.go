package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/go-printf/service"
)

// TUI is the text user interface for exploring printf templates
// interactively: a command line accepts "template|arg1,arg2,...",
// runs it through a service.Session, and renders the directive trace,
// output, and run history side by side.
type TUI struct {
	Session *service.Session
	History *CommandHistory

	App   *tview.Application
	Pages *tview.Pages

	MainLayout    *tview.Flex
	DirectiveView *tview.TextView
	HistoryView   *tview.TextView
	OutputView    *tview.TextView
	CommandInput  *tview.InputField
}

// NewTUI creates a new text user interface bound to session.
func NewTUI(session *service.Session) *TUI {
	t := &TUI{
		Session: session,
		History: NewCommandHistory(),
	}

	t.App = tview.NewApplication()
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

// NewTUIWithScreen builds a TUI against an explicit tcell.Screen, the
// seam tests use to drive the UI with a SimulationScreen instead of a
// real terminal.
func NewTUIWithScreen(session *service.Session, screen tcell.Screen) *TUI {
	t := &TUI{
		Session: session,
		History: NewCommandHistory(),
	}

	t.App = tview.NewApplication().SetScreen(screen)
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.DirectiveView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.DirectiveView.SetBorder(true).SetTitle(" Directives ")

	t.HistoryView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.HistoryView.SetBorder(true).SetTitle(" History ")

	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().
		SetLabel("template|args> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Run ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.DirectiveView, 0, 2, false).
		AddItem(t.HistoryView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.OutputView, 0, 2, false).
		AddItem(rightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.Session.ClearHistory()
			t.UpdateHistoryView()
			return nil
		case tcell.KeyUp:
			t.CommandInput.SetText(t.History.Previous())
			return nil
		case tcell.KeyDown:
			t.CommandInput.SetText(t.History.Next())
			return nil
		}
		return event
	})
}

// handleCommand runs the "template|arg1,arg2,..." entered in CommandInput.
func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	raw := t.CommandInput.GetText()
	if raw == "" {
		return
	}
	t.History.Add(raw)
	t.CommandInput.SetText("")
	t.executeCommand(raw)
}

func (t *TUI) executeCommand(raw string) {
	template, args := parseCommand(raw)
	result := t.Session.Run(template, args)

	if result.Err != "" {
		t.WriteOutput(fmt.Sprintf("[red]error:[white] %s\n", result.Err))
	} else {
		t.WriteOutput(result.Output + "\n")
	}

	t.UpdateDirectiveView(result.Directives)
	t.UpdateHistoryView()
	t.App.Draw()
}

// WriteOutput appends text to the output view.
func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text)) // errors never occur writing to a TextView
	t.OutputView.ScrollToEnd()
}

// UpdateDirectiveView renders the most recent run's directive trace.
func (t *TUI) UpdateDirectiveView(directives []service.DirectiveInfo) {
	t.DirectiveView.Clear()

	if len(directives) == 0 {
		t.DirectiveView.SetText("[yellow]no directives[white]")
		return
	}

	var lines []string
	for _, d := range directives {
		line := fmt.Sprintf("[yellow]%%%d$%s[white] len=%s w=%d p=%d", d.Position, d.Type, d.Length, d.Width, d.Precision)
		if len(d.Warnings) > 0 {
			line += fmt.Sprintf(" [red](%s)[white]", strings.Join(d.Warnings, "; "))
		}
		lines = append(lines, line)
	}
	t.DirectiveView.SetText(strings.Join(lines, "\n"))
}

// UpdateHistoryView renders every run recorded so far, most recent last.
func (t *TUI) UpdateHistoryView() {
	t.HistoryView.Clear()

	runs := t.Session.History()
	var lines []string
	for _, r := range runs {
		status := "[green]ok[white]"
		if r.State == service.StateError {
			status = "[red]error[white]"
		}
		lines = append(lines, fmt.Sprintf("%s %q -> %q", status, r.Template, r.Output))
	}
	t.HistoryView.SetText(strings.Join(lines, "\n"))
}

// RefreshAll redraws every panel from current session state.
func (t *TUI) RefreshAll() {
	history := t.Session.History()
	if len(history) > 0 {
		t.UpdateDirectiveView(history[len(history)-1].Directives)
	}
	t.UpdateHistoryView()
	t.App.Draw()
}

// Run starts the TUI application.
func (t *TUI) Run() error {
	t.RefreshAll()
	t.WriteOutput("[green]printf template explorer[white]\n")
	t.WriteOutput("Enter template|arg1,arg2,... and press Enter. Ctrl+L clears history, Ctrl+C quits.\n\n")
	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI application.
func (t *TUI) Stop() {
	t.App.Stop()
}

// parseCommand splits "template|arg1,arg2,..." into a template string
// and a decoded argument slice. Each comma-separated token is parsed as
// an integer if it looks numeric, otherwise passed through as a string;
// there is no quoting syntax, matching the CLI's simplicity.
func parseCommand(raw string) (string, []any) {
	template, rest, hasArgs := strings.Cut(raw, "|")
	if !hasArgs || rest == "" {
		return template, nil
	}

	tokens := strings.Split(rest, ",")
	args := make([]any, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if n, err := strconv.ParseInt(tok, 0, 64); err == nil {
			args[i] = n
		} else {
			args[i] = tok
		}
	}
	return template, args
}
