package tools

import (
	"fmt"

	"github.com/lookbusy1344/go-printf/printf"
)

// LintLevel represents the severity of a lint issue.
type LintLevel int

const (
	LintError   LintLevel = iota // the template would fail at runtime
	LintWarning                  // likely a mistake, but the template runs
	LintInfo                     // suggestions, style recommendations
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue represents a single finding against a template+arg-count pair.
type LintIssue struct {
	Level   LintLevel
	Message string
	Code    string // "TOO_FEW_ARGS", "UNUSED_ARG", "MISSING_POSITIONAL", ...
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("%s: %s [%s]", i.Level, i.Message, i.Code)
}

// Lint analyzes template against argCount without rendering it,
// reporting argument-count mismatches and other statically detectable
// problems (a rejected floating-point conversion, an unused trailing
// argument) the way a human reviewer would flag them before the
// template is ever run against real data.
func Lint(template string, argCount int) []*LintIssue {
	var issues []*LintIssue

	report, err := printf.AnalyzeTemplate(template)
	if err != nil {
		issues = append(issues, &LintIssue{
			Level:   LintError,
			Message: err.Error(),
			Code:    "PARSE_ERROR",
		})
		return issues
	}

	for _, tok := range report.Tokens {
		if tok.Type.IsFloat() {
			issues = append(issues, &LintIssue{
				Level:   LintError,
				Message: fmt.Sprintf("'%%%s' is a floating-point conversion; this engine rejects it rather than silently ignoring it", tok.Type),
				Code:    "FLOAT_UNSUPPORTED",
			})
		}
	}

	if report.Positional {
		if report.MaxPositionalIndex > argCount {
			issues = append(issues, &LintIssue{
				Level:   LintError,
				Message: fmt.Sprintf("template references argument %d$ but only %d argument(s) were given", report.MaxPositionalIndex, argCount),
				Code:    "MISSING_POSITIONAL",
			})
		} else if report.MaxPositionalIndex < argCount {
			issues = append(issues, &LintIssue{
				Level:   LintWarning,
				Message: fmt.Sprintf("%d trailing argument(s) are never referenced by any M$ directive", argCount-report.MaxPositionalIndex),
				Code:    "UNUSED_ARG",
			})
		}
		return issues
	}

	switch {
	case report.SequentialSlotCount > argCount:
		issues = append(issues, &LintIssue{
			Level:   LintError,
			Message: fmt.Sprintf("template consumes %d argument(s) but only %d were given", report.SequentialSlotCount, argCount),
			Code:    "TOO_FEW_ARGS",
		})
	case report.SequentialSlotCount < argCount:
		issues = append(issues, &LintIssue{
			Level:   LintWarning,
			Message: fmt.Sprintf("%d trailing argument(s) are never consumed by the template", argCount-report.SequentialSlotCount),
			Code:    "UNUSED_ARG",
		})
	}

	return issues
}
