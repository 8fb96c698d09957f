// Package playground is a desktop format-string explorer built on
// fyne: a toolbar-plus-panels layout with a StatusLabel feedback loop,
// driven by a service.Session.
package playground

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lookbusy1344/go-printf/service"
	"github.com/lookbusy1344/go-printf/tools"
)

// Playground is the graphical template explorer.
type Playground struct {
	Session *service.Session
	App     fyne.App
	Window  fyne.Window

	TemplateEntry *widget.Entry
	ArgsEntry     *widget.Entry
	DirectiveView *widget.TextGrid
	OutputView    *widget.TextGrid
	HistoryList   *widget.List
	StatusLabel   *widget.Label
	Toolbar       *widget.Toolbar
}

// Run builds and shows the playground window, blocking until closed.
func Run(session *service.Session) error {
	pg := newPlayground(session)
	pg.Window.ShowAndRun()
	return nil
}

func newPlayground(session *service.Session) *Playground {
	myApp := app.New()
	myWindow := myApp.NewWindow("printf Playground")

	pg := &Playground{
		Session: session,
		App:     myApp,
		Window:  myWindow,
	}

	pg.initializeViews()
	pg.buildLayout()
	pg.setupToolbar()

	myWindow.Resize(fyne.NewSize(1100, 700))

	return pg
}

func (pg *Playground) initializeViews() {
	pg.TemplateEntry = widget.NewEntry()
	pg.TemplateEntry.SetPlaceHolder(`Template, e.g. "%2$s is %1$d"`)

	pg.ArgsEntry = widget.NewEntry()
	pg.ArgsEntry.SetPlaceHolder("Comma-separated args, e.g. 30, Dave")

	pg.DirectiveView = widget.NewTextGrid()
	pg.DirectiveView.SetText("no directives yet")

	pg.OutputView = widget.NewTextGrid()
	pg.OutputView.SetText("")

	pg.HistoryList = widget.NewList(
		func() int { return len(pg.Session.History()) },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			history := pg.Session.History()
			if id < 0 || id >= len(history) {
				return
			}
			run := history[id]
			status := "ok"
			if run.State == service.StateError {
				status = "error"
			}
			obj.(*widget.Label).SetText(fmt.Sprintf("[%s] %s -> %q", status, run.Template, run.Output))
		},
	)

	pg.StatusLabel = widget.NewLabel("Ready")
}

func (pg *Playground) buildLayout() {
	formPanel := container.NewVBox(
		widget.NewLabel("Template"),
		pg.TemplateEntry,
		widget.NewLabel("Arguments"),
		pg.ArgsEntry,
	)

	directivePanel := container.NewBorder(
		widget.NewLabel("Directives"),
		nil, nil, nil,
		container.NewScroll(pg.DirectiveView),
	)

	outputPanel := container.NewBorder(
		widget.NewLabel("Output"),
		nil, nil, nil,
		container.NewScroll(pg.OutputView),
	)

	historyPanel := container.NewBorder(
		widget.NewLabel("History"),
		nil, nil, nil,
		container.NewScroll(pg.HistoryList),
	)

	rightTop := container.NewVSplit(directivePanel, outputPanel)
	rightTop.SetOffset(0.4)

	rightPanel := container.NewVSplit(rightTop, historyPanel)
	rightPanel.SetOffset(0.65)

	mainSplit := container.NewHSplit(formPanel, rightPanel)
	mainSplit.SetOffset(0.3)

	statusBar := container.NewBorder(nil, nil, nil, nil, pg.StatusLabel)

	content := container.NewBorder(
		pg.Toolbar,
		statusBar,
		nil, nil,
		mainSplit,
	)

	pg.Window.SetContent(content)
}

func (pg *Playground) setupToolbar() {
	pg.Toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.MediaPlayIcon(), func() {
			pg.runTemplate()
		}),
		widget.NewToolbarAction(theme.ConfirmIcon(), func() {
			pg.lintTemplate()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			pg.clearHistory()
		}),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			pg.refreshViews()
		}),
	)
}

// runTemplate renders the current template/args pair through the session
// and refreshes every panel from the result.
func (pg *Playground) runTemplate() {
	template := pg.TemplateEntry.Text
	args := parseArgList(pg.ArgsEntry.Text)

	result := pg.Session.Run(template, args)
	if result.Err != "" {
		pg.StatusLabel.SetText("Error: " + result.Err)
	} else {
		pg.StatusLabel.SetText(fmt.Sprintf("Wrote %d bytes", result.ByteCount))
	}

	pg.updateOutputView(result)
	pg.updateDirectiveView(result.Directives)
	pg.HistoryList.Refresh()
}

// lintTemplate statically checks the template against the argument count
// implied by the args field, without rendering it.
func (pg *Playground) lintTemplate() {
	template := pg.TemplateEntry.Text
	args := parseArgList(pg.ArgsEntry.Text)

	issues := tools.Lint(template, len(args))
	if len(issues) == 0 {
		pg.StatusLabel.SetText("Lint: no issues found")
		return
	}

	var sb strings.Builder
	for i, issue := range issues {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(issue.String())
	}
	pg.StatusLabel.SetText("Lint: " + sb.String())
}

func (pg *Playground) clearHistory() {
	pg.Session.ClearHistory()
	pg.HistoryList.Refresh()
	pg.StatusLabel.SetText("History cleared")
}

func (pg *Playground) refreshViews() {
	history := pg.Session.History()
	if len(history) > 0 {
		last := history[len(history)-1]
		pg.updateOutputView(last)
		pg.updateDirectiveView(last.Directives)
	}
	pg.HistoryList.Refresh()
	pg.StatusLabel.SetText("Refreshed")
}

func (pg *Playground) updateOutputView(result service.RunResult) {
	if result.Err != "" {
		pg.OutputView.SetText("error: " + result.Err)
		return
	}
	pg.OutputView.SetText(result.Output)
}

func (pg *Playground) updateDirectiveView(directives []service.DirectiveInfo) {
	if len(directives) == 0 {
		pg.DirectiveView.SetText("no directives")
		return
	}

	var sb strings.Builder
	for _, d := range directives {
		sb.WriteString(fmt.Sprintf("%%%d$%s len=%s w=%d p=%d", d.Position, d.Type, d.Length, d.Width, d.Precision))
		if len(d.Warnings) > 0 {
			sb.WriteString(fmt.Sprintf("  (%s)", strings.Join(d.Warnings, "; ")))
		}
		sb.WriteString("\n")
	}
	pg.DirectiveView.SetText(sb.String())
}

// parseArgList decodes a comma-separated argument field the same way the
// TUI decodes its "|arg1,arg2,..." suffix: integers where they parse
// cleanly, otherwise the raw string. An empty field yields no arguments.
func parseArgList(raw string) []any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	tokens := strings.Split(raw, ",")
	args := make([]any, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if n, err := strconv.ParseInt(tok, 0, 64); err == nil {
			args[i] = n
		} else {
			args[i] = tok
		}
	}
	return args
}
