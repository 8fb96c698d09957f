package printf

import "io"

// TraceEntry is one resolved directive, exposed for the debugger,
// service, and TUI/GUI layers to render without re-implementing
// parsing. It is the structured descendant of original_source's
// print_format_specifier/print_positional_info_stuff developer dumps —
// a first-class, tested feature here rather than a commented-out debug
// print.
type TraceEntry struct {
	Raw       string // the literal run immediately preceding this directive
	Position  int
	Length    Length
	Type      Verb
	Flags     Flags
	Width     int
	Precision int
	Warnings  []string
}

func newTraceEntry(seg segment, d Directive, warnings []warningKind) TraceEntry {
	e := TraceEntry{
		Raw:       seg.literal,
		Position:  d.Position,
		Length:    d.Length,
		Type:      d.Type,
		Flags:     d.Flags,
		Width:     d.Width,
		Precision: d.Precision,
	}
	for _, w := range warnings {
		e.Warnings = append(e.Warnings, w.String())
	}
	return e
}

// Trace runs the engine against a discarded sink, returning the
// resulting byte count alongside the directive-by-directive trace. It
// performs a real run — including argument extraction and the
// positional pre-scan when applicable — so the trace reflects exactly
// what a live Fprintf call would have done.
func Trace(format string, args []any) (int, []TraceEntry, error) {
	var entries []TraceEntry
	n, err := runTraced(format, args, newStreamSink(io.Discard), &entries)
	if err != nil {
		return -1, entries, err
	}
	return int(n), entries, nil
}
