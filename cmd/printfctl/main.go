// Command printfctl is the command-line front end for the printf engine:
// a one-shot renderer by default, with -tui and -api-server modes for
// interactive exploration, dispatching between them from a single flag
// set.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/lookbusy1344/go-printf/api"
	"github.com/lookbusy1344/go-printf/config"
	"github.com/lookbusy1344/go-printf/debugger"
	"github.com/lookbusy1344/go-printf/printf"
	"github.com/lookbusy1344/go-printf/service"
	"github.com/lookbusy1344/go-printf/tools"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		tuiMode     = flag.Bool("tui", false, "Start the interactive TUI template explorer")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort     = flag.Int("port", 8080, "API server port (used with -api-server)")
		lintOnly    = flag.Bool("lint", false, "Statically check the template and exit, without rendering")
		argCount    = flag.Int("argc", -1, "Argument count to lint against (default: number of trailing args given)")
		retryShort  = flag.Bool("retry-short-writes", false, "Retry on short writes instead of failing")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("printfctl %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *apiServer {
		runAPIServer(*apiPort)
		return
	}

	if *tuiMode {
		runTUI(cfg)
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	template := flag.Arg(0)
	args := parseArgs(flag.Args()[1:])

	if *lintOnly {
		n := *argCount
		if n < 0 {
			n = len(args)
		}
		runLint(template, n)
		return
	}

	policy := cfg.Policy()
	if *retryShort {
		policy.RetryShortWrites = true
	}

	if err := render(cfg.CLI.DefaultSink, policy, template, args); err != nil {
		fmt.Fprintf(os.Stderr, "printf error: %v\n", err)
		os.Exit(1)
	}
}

// render dispatches to the sink cfg.CLI.DefaultSink names: "stdout" writes
// straight through a descriptor sink (the default), "buffer" renders into
// an auto-sized fixed buffer before printing it, and "growable" renders
// into an owned, growable buffer.
func render(sink string, policy printf.Policy, template string, args []any) error {
	switch sink {
	case "buffer":
		out, _, err := printf.SprintfAuto(policy, template, args...)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	case "growable":
		out, ok := printf.AsprintfPolicy(policy, template, args...)
		if !ok {
			return fmt.Errorf("render failed")
		}
		fmt.Print(out)
		return nil
	default:
		_, err := printf.VdprintfPolicy(policy, int(os.Stdout.Fd()), template, args)
		return err
	}
}

// runAPIServer starts the HTTP API server and blocks until SIGINT/SIGTERM,
// shutting down gracefully.
func runAPIServer(port int) {
	server := api.NewServer(port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down API server...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
				os.Exit(1)
			}

			fmt.Println("API server stopped")
			os.Exit(0)
		})
	}

	monitor := api.NewProcessMonitor(performShutdown)
	monitor.Start()

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}

func runTUI(cfg *config.Config) {
	session := service.NewSession(cfg.Policy())
	tui := debugger.NewTUI(session)
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

func runLint(template string, argCount int) {
	issues := tools.Lint(template, argCount)
	if len(issues) == 0 {
		fmt.Println("no issues found")
		return
	}
	for _, issue := range issues {
		fmt.Println(issue.String())
	}
	for _, issue := range issues {
		if issue.Level == tools.LintError {
			os.Exit(1)
		}
	}
}

// parseArgs decodes each trailing command-line argument much as the
// TUI's command line does: integers where they parse cleanly, otherwise
// the raw string. Unlike the TUI, it also decodes "true" and "false"
// (in any case) as bools.
func parseArgs(raw []string) []any {
	args := make([]any, len(raw))
	for i, tok := range raw {
		if n, err := strconv.ParseInt(tok, 0, 64); err == nil {
			args[i] = n
		} else if strings.EqualFold(tok, "true") || strings.EqualFold(tok, "false") {
			args[i] = strings.EqualFold(tok, "true")
		} else {
			args[i] = tok
		}
	}
	return args
}

func printHelp() {
	fmt.Printf(`printfctl %s

Usage: printfctl [options] <template> [args...]
       printfctl -tui
       printfctl -api-server [-port N]

Options:
  -help                  Show this help message
  -version               Show version information
  -tui                   Start the interactive TUI template explorer
  -api-server            Start HTTP API server mode
  -port N                API server port (default: 8080, used with -api-server)
  -lint                  Statically check the template and exit, without rendering
  -argc N                Argument count to lint against (default: trailing args given)
  -retry-short-writes    Retry on short writes instead of failing

Examples:
  printfctl "%%d apples, %%s" 3 mangoes
  printfctl "%%2$s is %%1$d" 30 Dave
  printfctl -lint -argc 1 "%%d %%s"
  printfctl -tui
  printfctl -api-server -port 3000
`, Version)
}
