package printf

import (
	"fmt"
	"math"
)

// normalizeResult carries the non-fatal warnings the normalizer produced,
// purely for the debugger's trace view.
type normalizeResult struct {
	warnings []warningKind
}

// normalize rejects hard incompatibilities between a directive's flags,
// width, precision, and length modifier, and silently neutralizes
// whichever of those the conversion type ignores, recording each
// neutralization as a warning rather than failing the call.
func normalize(d *Directive) (normalizeResult, error) {
	var res normalizeResult

	if d.Type == VerbError || d.Type == VerbNone {
		return res, fmt.Errorf("printf: %w", ErrUnknownType)
	}
	if d.Type.isFloat() {
		return res, fmt.Errorf("printf: %w: '%%%s' is not implemented", ErrFloatUnsupported, d.Type)
	}

	if err := checkLengthType(d.Length, d.Type); err != nil {
		return res, err
	}

	if d.sawRepeatFlag {
		res.warnings = append(res.warnings, warnRepeatFlag)
	}

	switch d.Type {
	case VerbC, VerbS, VerbP, VerbN:
		if d.Flags.AlwaysSign || d.Flags.SpaceSign || d.Flags.ZeroPad || d.Flags.AlternateForm {
			d.Flags.AlwaysSign = false
			d.Flags.SpaceSign = false
			d.Flags.ZeroPad = false
			d.Flags.AlternateForm = false
			res.warnings = append(res.warnings, warnFlagDoesNothing)
		}
	}

	if d.Type.isUnsigned() {
		if d.Flags.AlwaysSign || d.Flags.SpaceSign {
			d.Flags.AlwaysSign = false
			d.Flags.SpaceSign = false
			res.warnings = append(res.warnings, warnFlagDoesNothing)
		}
	}

	// '+' wins over ' ' when both given on a signed conversion.
	if d.Flags.AlwaysSign && d.Flags.SpaceSign {
		d.Flags.SpaceSign = false
	}

	// precision on an integer conversion disables zero-padding (C99 7.19.6.1).
	if d.Type.isInteger() && d.hasPrecision && d.Flags.ZeroPad {
		d.Flags.ZeroPad = false
		res.warnings = append(res.warnings, warnPrecisionDoesNothing)
	}

	// explicit precision on 'c' and 'p' is meaningless and cleared, same
	// as the flags above; 's' keeps precision, it is the one type that
	// uses it.
	if (d.Type == VerbC || d.Type == VerbP) && d.hasPrecision {
		d.hasPrecision = false
		d.Precision = -1
		res.warnings = append(res.warnings, warnPrecisionDoesNothing)
	}

	if d.Type == VerbN {
		if d.width.literal != 0 || d.width.fromArg || d.hasPrecision {
			res.warnings = append(res.warnings, warnDoesNotPrint)
		}
	}

	// left justification implies no zero-padding.
	if d.Flags.LeftJustify && d.Flags.ZeroPad {
		d.Flags.ZeroPad = false
		res.warnings = append(res.warnings, warnFlagDoesNothing)
	}

	return res, nil
}

// checkLengthType mirrors format_string_check_length_type: L is only
// legal on float conversions, which are already rejected outright before
// this runs, so L is always an error here. 'p' accepts no length
// modifier at all. 'c' and 's' accept none either — the 'l' variant
// would denote a wide-character conversion, which this implementation
// does not support, so it is rejected the same as any other length
// rather than silently treated as narrow.
func checkLengthType(l Length, v Verb) error {
	if l == LengthCapitalL {
		return fmt.Errorf("printf: %w: length 'L' only applies to floating-point conversions", ErrIncompatibleLen)
	}
	if l == LengthNone {
		return nil
	}
	switch v {
	case VerbP:
		return fmt.Errorf("printf: %w: length '%s' does not apply to '%%p'", ErrIncompatibleLen, l)
	case VerbC, VerbS:
		return fmt.Errorf("printf: %w: wide '%%l%s' is not supported", ErrIncompatibleLen, v)
	}
	return nil
}

// resolveWidthPrecision fills in d.Width/d.Precision from the already
// fully-resolved width/precision values the argument source returned
// (literal digits or a fetched '*'/'*M$' value — the caller doesn't need
// to know which). A negative width is folded into LeftJustify and its
// absolute value used, per C99, with width == minimum-signed-int (an
// argument-supplied width only; literal widths are digit runs and can
// never be negative) clamped to maximum-signed-int rather than
// overflowing on negation.
func resolveWidthPrecision(d *Directive, width, precision int, hasPrecision bool) {
	switch {
	case width == math.MinInt32:
		d.Flags.LeftJustify = true
		d.Width = math.MaxInt32
	case width < 0:
		d.Flags.LeftJustify = true
		d.Width = -width
	default:
		d.Width = width
	}

	if !hasPrecision {
		d.Precision = -1
		return
	}
	if precision < 0 {
		// a negative '*' precision means "precision omitted" (C99).
		d.Precision = -1
	} else {
		d.Precision = precision
	}
}
