package printf

import "fmt"

// segment is one literal-then-directive pair from a single forward scan
// of the template. scanTemplate always builds the full list before any
// mode decision is made (see spec section 9's design note: the source's
// restart-and-reparse under positional mode is a correctness foot-gun
// this implementation avoids by scanning exactly once).
type segment struct {
	literal string
	dir     Directive
	hasDir  bool
}

type deliveryMode int

const (
	modeSequential deliveryMode = iota
	modePositional
)

// scanTemplate walks the whole template once, collecting every literal
// run and directive, and decides the delivery mode from the first
// directive encountered that is not '%%' (spec section 4.3: "engaged iff
// the first directive encountered has position>0"). It also enforces,
// in the same pass, that every directive agrees with that mode and that
// '*' width/precision indirection under positional mode always carries
// a mandatory 'M$'.
func scanTemplate(template string) ([]segment, deliveryMode, error) {
	p := newParser(template)
	var segments []segment
	mode := modeSequential
	decided := false

	for {
		lit := p.literal()
		if p.atEnd() {
			segments = append(segments, segment{literal: lit})
			break
		}
		d, ok, err := p.next()
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			segments = append(segments, segment{literal: lit})
			break
		}
		segments = append(segments, segment{literal: lit, dir: d, hasDir: true})

		if d.Type == VerbNone { // '%%'
			continue
		}
		if !decided {
			if d.Position > 0 {
				mode = modePositional
			} else {
				mode = modeSequential
			}
			decided = true
		}
		if mode == modePositional {
			if d.Position == 0 {
				return nil, 0, fmt.Errorf("printf: %w", ErrMixedPositional)
			}
			if (d.width.fromArg && d.width.argIndex == 0) || (d.precision.fromArg && d.precision.argIndex == 0) {
				return nil, 0, fmt.Errorf("printf: %w", ErrMissingPositional)
			}
		} else if d.Position != 0 {
			return nil, 0, fmt.Errorf("printf: %w", ErrMixedPositional)
		}
	}
	return segments, mode, nil
}

// arguments is the uniform query surface spec section 4.3 describes:
// emitters consult it the same way whether the template turned out to be
// sequential or positional.
type arguments interface {
	width(d *Directive) (int, error)
	precision(d *Directive) (int, error)
	integer(d *Directive) (signed int64, unsigned uint64, err error)
	char(d *Directive) (rune, error)
	str(d *Directive) (value string, isNil bool, err error)
	pointer(d *Directive) (value uintptr, isNil bool, err error)
	countTarget(d *Directive) (countTarget, error)
}

// sequentialArgs is the sequential-mode implementation: a cursor over
// the variadic pack, popped in template order — width, then precision,
// then the directive's own value, matching the order a real va_list
// would be consumed in.
type sequentialArgs struct {
	cur *cursor
}

func (a *sequentialArgs) width(d *Directive) (int, error) {
	if !d.width.fromArg {
		return d.width.literal, nil
	}
	raw, ok := a.cur.pop()
	if !ok {
		return 0, ErrTooFewArgs
	}
	n, err := toInt64(raw)
	if err != nil {
		return 0, err
	}
	return int(int32(n)), nil
}

func (a *sequentialArgs) precision(d *Directive) (int, error) {
	if !d.precision.fromArg {
		return d.precision.literal, nil
	}
	raw, ok := a.cur.pop()
	if !ok {
		return 0, ErrTooFewArgs
	}
	n, err := toInt64(raw)
	if err != nil {
		return 0, err
	}
	return int(int32(n)), nil
}

func (a *sequentialArgs) integer(d *Directive) (int64, uint64, error) {
	raw, ok := a.cur.pop()
	if !ok {
		return 0, 0, ErrTooFewArgs
	}
	if d.Type.isUnsigned() {
		u, err := popUint(raw, d.Length)
		return 0, u, err
	}
	s, err := popInt(raw, d.Length)
	return s, 0, err
}

func (a *sequentialArgs) char(d *Directive) (rune, error) {
	raw, ok := a.cur.pop()
	if !ok {
		return 0, ErrTooFewArgs
	}
	return popRune(raw)
}

func (a *sequentialArgs) str(d *Directive) (string, bool, error) {
	raw, ok := a.cur.pop()
	if !ok {
		return "", false, ErrTooFewArgs
	}
	if raw == nil {
		return "", true, nil
	}
	s, err := popString(raw)
	return s, false, err
}

func (a *sequentialArgs) pointer(d *Directive) (uintptr, bool, error) {
	raw, ok := a.cur.pop()
	if !ok {
		return 0, false, ErrTooFewArgs
	}
	if raw == nil {
		return 0, true, nil
	}
	p, err := popPointer(raw)
	return p, false, err
}

func (a *sequentialArgs) countTarget(d *Directive) (countTarget, error) {
	raw, ok := a.cur.pop()
	if !ok {
		return countTarget{}, ErrTooFewArgs
	}
	return popCountTarget(raw)
}

// run is the main engine: template processed left to right, literal
// bytes forwarded verbatim, '%%' collapsed to a single '%', and every
// other directive normalized and dispatched to its emitter. Any hard
// error at any stage aborts immediately; bytes already written to s stay
// written (spec section 7: "no partial-output rollback").
func run(template string, args []any, s Sink) (int64, error) {
	return runTraced(template, args, s, nil)
}

func runTraced(template string, args []any, s Sink, trace *[]TraceEntry) (int64, error) {
	segments, mode, err := scanTemplate(template)
	if err != nil {
		return 0, err
	}

	var a arguments
	switch mode {
	case modePositional:
		records, maxIndex, err := collectPositionalRecords(segments)
		if err != nil {
			return 0, err
		}
		slots, err := fillPositional(records, maxIndex, args)
		if err != nil {
			return 0, err
		}
		a = &positionalArgs{slots: slots}
	default:
		a = &sequentialArgs{cur: newCursor(args)}
	}

	for _, seg := range segments {
		if err := writeStr(s, seg.literal); err != nil {
			return s.count(), err
		}
		if !seg.hasDir {
			continue
		}
		d := seg.dir
		if d.Type == VerbNone { // '%%'
			if err := writeByte(s, '%'); err != nil {
				return s.count(), err
			}
			continue
		}
		warnings, err := resolveAndEmit(s, &d, a)
		if err != nil {
			return s.count(), err
		}
		if trace != nil {
			*trace = append(*trace, newTraceEntry(seg, d, warnings))
		}
	}
	return s.count(), nil
}

// resolveAndEmit runs one directive through width/precision resolution,
// normalization, and its type-specific emitter — the WIDTH-RESOLVED →
// PRECISION-RESOLVED → NORMALIZED → EMITTED run of the state machine in
// spec section 4.6.
func resolveAndEmit(s Sink, d *Directive, a arguments) ([]warningKind, error) {
	width, err := a.width(d)
	if err != nil {
		return nil, err
	}
	precision := -1
	if d.hasPrecision {
		precision, err = a.precision(d)
		if err != nil {
			return nil, err
		}
	}
	resolveWidthPrecision(d, width, precision, d.hasPrecision)

	res, err := normalize(d)
	if err != nil {
		return nil, err
	}

	switch {
	case d.Type.isInteger():
		signed, unsigned, err := a.integer(d)
		if err != nil {
			return nil, err
		}
		return res.warnings, emitInteger(s, d, signed, unsigned)
	case d.Type == VerbC:
		r, err := a.char(d)
		if err != nil {
			return nil, err
		}
		return res.warnings, emitChar(s, d, r)
	case d.Type == VerbS:
		str, isNil, err := a.str(d)
		if err != nil {
			return nil, err
		}
		return res.warnings, emitString(s, d, str, isNil)
	case d.Type == VerbP:
		ptr, isNil, err := a.pointer(d)
		if err != nil {
			return nil, err
		}
		return res.warnings, emitPointer(s, d, ptr, isNil)
	case d.Type == VerbN:
		ct, err := a.countTarget(d)
		if err != nil {
			return nil, err
		}
		return res.warnings, emitCount(ct, s.count())
	default:
		return nil, fmt.Errorf("printf: %w", ErrUnknownType)
	}
}

func writeByte(s Sink, b byte) error {
	if !s.writeByte(b) {
		return fmt.Errorf("printf: %w", ErrShortWrite)
	}
	return nil
}

func writeStr(s Sink, str string) error {
	for i := 0; i < len(str); i++ {
		if err := writeByte(s, str[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeRepeat(s Sink, b byte, n int) error {
	for i := 0; i < n; i++ {
		if err := writeByte(s, b); err != nil {
			return err
		}
	}
	return nil
}
