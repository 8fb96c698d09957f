package printf

// LintToken is one directive's structural shape, exposed for static
// analysis tools (tools.Lint) that reason about a template and an
// argument count without ever constructing real arguments to feed the
// engine.
type LintToken struct {
	Position          int // 0 in sequential mode
	Type              Verb
	Length            Length
	WidthFromArg      bool
	PrecisionFromArg  bool
	HasPrecision      bool
}

// LintReport is the structural result of analyzing a template: every
// directive it contains, whether it engaged positional mode, and how
// many argument slots a sequential-mode run would consume.
type LintReport struct {
	Tokens              []LintToken
	Positional          bool
	MaxPositionalIndex  int
	SequentialSlotCount int
}

// AnalyzeTemplate parses template and reports its directive structure
// without requiring argument values, the static counterpart to Trace.
// A parse or mode error (unknown type, mixed positional/sequential,
// '*' without 'M$' in positional mode) surfaces here exactly as it
// would during a real run, since both paths share scanTemplate.
func AnalyzeTemplate(template string) (LintReport, error) {
	segments, mode, err := scanTemplate(template)
	if err != nil {
		return LintReport{}, err
	}

	report := LintReport{Positional: mode == modePositional}
	for _, seg := range segments {
		if !seg.hasDir || seg.dir.Type == VerbNone {
			continue
		}
		d := seg.dir
		report.Tokens = append(report.Tokens, LintToken{
			Position:         d.Position,
			Type:             d.Type,
			Length:           d.Length,
			WidthFromArg:     d.width.fromArg,
			PrecisionFromArg: d.precision.fromArg,
			HasPrecision:     d.hasPrecision,
		})
		if d.Position > report.MaxPositionalIndex {
			report.MaxPositionalIndex = d.Position
		}
		if d.width.argIndex > report.MaxPositionalIndex {
			report.MaxPositionalIndex = d.width.argIndex
		}
		if d.precision.argIndex > report.MaxPositionalIndex {
			report.MaxPositionalIndex = d.precision.argIndex
		}
		if mode == modeSequential {
			if d.width.fromArg {
				report.SequentialSlotCount++
			}
			if d.precision.fromArg {
				report.SequentialSlotCount++
			}
			report.SequentialSlotCount++ // the directive's own value
		}
	}
	return report, nil
}
