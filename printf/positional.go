package printf

import "fmt"

// verbWidthPrecision marks a slot that was referenced only as a '*M$'
// width or precision indirection rather than as a directive's own value.
// It shares the same index space as value slots — a '*M$' index and a
// directive's own N$ index both draw from the one argument list — so a
// slot recorded this way is still subject to the "same slot, same
// (length,type)" consistency rule against any other reference to it.
const verbWidthPrecision Verb = Verb(-1)

// slotRecord is what the pre-scan leaves behind for one positional
// index: the (length, type) pair every reference to that index must
// agree on.
type slotRecord struct {
	length Length
	verb   Verb
	set    bool
}

// ensureSlotCapacity grows records, geometrically from an initial
// capacity of 8 per spec section 4.3, until index n is addressable.
func ensureSlotCapacity(records *[]slotRecord, n int) {
	if cap(*records) == 0 {
		*records = make([]slotRecord, 1, 8)
	}
	for len(*records) <= n {
		*records = append(*records, slotRecord{})
	}
}

// recordSlot records that positional index is used with the given
// (length, verb). A second reference to the same index must agree
// exactly, or it is a hard error (spec section 3, "a slot may be
// referenced multiple times; on second reference the (length, type)
// must match exactly — else hard error").
func recordSlot(records *[]slotRecord, index int, length Length, verb Verb) error {
	ensureSlotCapacity(records, index)
	rec := &(*records)[index]
	if rec.set {
		if rec.length != length || rec.verb != verb {
			return fmt.Errorf("printf: %w: argument %d", ErrSlotTypeMismatch, index)
		}
		return nil
	}
	rec.length = length
	rec.verb = verb
	rec.set = true
	return nil
}

// collectPositionalRecords builds the pre-scan's slot records from an
// already-parsed segment list (see scanTemplate in engine.go) — a single
// scan feeds both mode detection and this table, rather than the source's
// restart-and-reparse, per spec section 9's design note.
func collectPositionalRecords(segments []segment) ([]slotRecord, int, error) {
	var records []slotRecord
	maxIndex := 0
	for _, seg := range segments {
		if !seg.hasDir || seg.dir.Type == VerbNone {
			continue
		}
		d := seg.dir
		if d.Position > maxIndex {
			maxIndex = d.Position
		}
		if err := recordSlot(&records, d.Position, d.Length, d.Type); err != nil {
			return nil, 0, err
		}
		if d.width.fromArg {
			if d.width.argIndex > maxIndex {
				maxIndex = d.width.argIndex
			}
			if err := recordSlot(&records, d.width.argIndex, LengthNone, verbWidthPrecision); err != nil {
				return nil, 0, err
			}
		}
		if d.precision.fromArg {
			if d.precision.argIndex > maxIndex {
				maxIndex = d.precision.argIndex
			}
			if err := recordSlot(&records, d.precision.argIndex, LengthNone, verbWidthPrecision); err != nil {
				return nil, 0, err
			}
		}
	}
	for i := 1; i <= maxIndex; i++ {
		if i >= len(records) || !records[i].set {
			return nil, 0, fmt.Errorf("printf: %w: argument %d", ErrMissingSlot, i)
		}
	}
	return records, maxIndex, nil
}

// slotValue is one filled positional slot: the (length, type) record
// plus the single value extracted for it, already narrowed per the
// promotion rules args.go applies for sequential delivery. Only the
// field matching record.verb is meaningful; which one that is follows
// directly from the record, so no separate tag is kept.
type slotValue struct {
	record      slotRecord
	signedVal   int64
	unsignedVal uint64
	runeVal     rune
	strVal      string
	strIsNil    bool
	ptrVal      uintptr
	ptrIsNil    bool
	count       countTarget
	intVal      int
}

// fillPositional performs the single linear pull from the argument list,
// in ascending index order, that spec section 4.3 requires: every
// pre-scanned slot is filled exactly once, using its recorded
// (length, type) to pick the extraction width.
func fillPositional(records []slotRecord, maxIndex int, args []any) ([]slotValue, error) {
	cur := newCursor(args)
	slots := make([]slotValue, maxIndex+1)
	for i := 1; i <= maxIndex; i++ {
		rec := records[i]
		raw, ok := cur.pop()
		if !ok {
			return nil, fmt.Errorf("printf: %w: argument %d", ErrTooFewArgs, i)
		}
		sv := slotValue{record: rec}
		switch {
		case rec.verb == verbWidthPrecision:
			n, err := toInt64(raw)
			if err != nil {
				return nil, err
			}
			sv.intVal = int(int32(n))
		case rec.verb.isInteger() && rec.verb.isUnsigned():
			u, err := popUint(raw, rec.length)
			if err != nil {
				return nil, err
			}
			sv.unsignedVal = u
		case rec.verb.isInteger():
			s, err := popInt(raw, rec.length)
			if err != nil {
				return nil, err
			}
			sv.signedVal = s
		case rec.verb == VerbC:
			r, err := popRune(raw)
			if err != nil {
				return nil, err
			}
			sv.runeVal = r
		case rec.verb == VerbS:
			if raw == nil {
				sv.strIsNil = true
			} else {
				s, err := popString(raw)
				if err != nil {
					return nil, err
				}
				sv.strVal = s
			}
		case rec.verb == VerbP:
			if raw == nil {
				sv.ptrIsNil = true
			} else {
				p, err := popPointer(raw)
				if err != nil {
					return nil, err
				}
				sv.ptrVal = p
			}
		case rec.verb == VerbN:
			ct, err := popCountTarget(raw)
			if err != nil {
				return nil, err
			}
			sv.count = ct
		default:
			return nil, fmt.Errorf("printf: %w", ErrUnknownType)
		}
		slots[i] = sv
	}
	return slots, nil
}

// positionalArgs is the positional-mode implementation of arguments: a
// pre-filled slot table served by 1-based index, rather than a cursor.
type positionalArgs struct {
	slots []slotValue
}

func (a *positionalArgs) width(d *Directive) (int, error) {
	if !d.width.fromArg {
		return d.width.literal, nil
	}
	return a.slots[d.width.argIndex].intVal, nil
}

func (a *positionalArgs) precision(d *Directive) (int, error) {
	if !d.precision.fromArg {
		return d.precision.literal, nil
	}
	return a.slots[d.precision.argIndex].intVal, nil
}

func (a *positionalArgs) integer(d *Directive) (int64, uint64, error) {
	sv := a.slots[d.Position]
	return sv.signedVal, sv.unsignedVal, nil
}

func (a *positionalArgs) char(d *Directive) (rune, error) {
	return a.slots[d.Position].runeVal, nil
}

func (a *positionalArgs) str(d *Directive) (string, bool, error) {
	sv := a.slots[d.Position]
	return sv.strVal, sv.strIsNil, nil
}

func (a *positionalArgs) pointer(d *Directive) (uintptr, bool, error) {
	sv := a.slots[d.Position]
	return sv.ptrVal, sv.ptrIsNil, nil
}

func (a *positionalArgs) countTarget(d *Directive) (countTarget, error) {
	return a.slots[d.Position].count, nil
}
