// Package printf reimplements the POSIX printf family: a format-directive
// interpreter that takes a template and a heterogeneous argument list and
// emits a character stream shaped by the embedded directives.
//
// The supported directive grammar is:
//
//	%[N$][flags][width][.precision][length]type
//
// Integer, character, string, pointer, and "characters written" (%n)
// directives are fully supported, along with POSIX positional parameters
// (%N$) and positional width/precision indirection (*M$). Floating-point
// directives (f F e E g G a A) and wide-character conversions are
// recognized by the grammar but always fail: the syntactic slots are
// reserved, not silently ignored.
package printf

// Length identifies a printf length modifier.
type Length int

const (
	LengthNone Length = iota
	LengthHH          // hh - char
	LengthH           // h  - short
	LengthL           // l  - long
	LengthLL          // ll - long long
	LengthJ           // j  - intmax_t
	LengthZ           // z  - size_t
	LengthT           // t  - ptrdiff_t
	LengthCapitalL    // L  - long double (float-only)
)

func (l Length) String() string {
	switch l {
	case LengthNone:
		return ""
	case LengthHH:
		return "hh"
	case LengthH:
		return "h"
	case LengthL:
		return "l"
	case LengthLL:
		return "ll"
	case LengthJ:
		return "j"
	case LengthZ:
		return "z"
	case LengthT:
		return "t"
	case LengthCapitalL:
		return "L"
	default:
		return "?"
	}
}

// Verb identifies a printf conversion type letter.
type Verb int

const (
	VerbNone Verb = iota
	VerbD         // signed decimal
	VerbI         // signed decimal (identical to d)
	VerbU         // unsigned decimal
	VerbO         // unsigned octal
	VerbX         // unsigned hex, lowercase
	VerbXUpper    // unsigned hex, uppercase
	VerbF
	VerbFUpper
	VerbE
	VerbEUpper
	VerbG
	VerbGUpper
	VerbA
	VerbAUpper
	VerbC // character
	VerbS // string
	VerbP // pointer
	VerbN // characters-written side channel
	VerbError
)

func (v Verb) String() string {
	switch v {
	case VerbD:
		return "d"
	case VerbI:
		return "i"
	case VerbU:
		return "u"
	case VerbO:
		return "o"
	case VerbX:
		return "x"
	case VerbXUpper:
		return "X"
	case VerbF:
		return "f"
	case VerbFUpper:
		return "F"
	case VerbE:
		return "e"
	case VerbEUpper:
		return "E"
	case VerbG:
		return "g"
	case VerbGUpper:
		return "G"
	case VerbA:
		return "a"
	case VerbAUpper:
		return "A"
	case VerbC:
		return "c"
	case VerbS:
		return "s"
	case VerbP:
		return "p"
	case VerbN:
		return "n"
	default:
		return "ERROR"
	}
}

// isFloat reports whether v is one of the reserved, unimplemented
// floating-point conversions.
func (v Verb) isFloat() bool {
	switch v {
	case VerbF, VerbFUpper, VerbE, VerbEUpper, VerbG, VerbGUpper, VerbA, VerbAUpper:
		return true
	default:
		return false
	}
}

// IsFloat exports isFloat for callers outside the package (tools.Lint)
// that need to flag a reserved floating-point directive statically,
// without running the engine against it.
func (v Verb) IsFloat() bool { return v.isFloat() }

func (v Verb) isInteger() bool {
	switch v {
	case VerbD, VerbI, VerbU, VerbO, VerbX, VerbXUpper:
		return true
	default:
		return false
	}
}

func (v Verb) isUnsigned() bool {
	switch v {
	case VerbU, VerbO, VerbX, VerbXUpper:
		return true
	default:
		return false
	}
}

// Flags are the five boolean flags a directive may carry.
type Flags struct {
	LeftJustify  bool // '-'
	AlwaysSign   bool // '+'
	SpaceSign    bool // ' '
	AlternateForm bool // '#'
	ZeroPad      bool // '0'
}

// widthPrecision holds either a literal value or an indirection through a
// (possibly positional) argument slot.
type widthPrecision struct {
	literal  int  // used when fromArg is false
	fromArg  bool // '*' or '*M$' was used
	argIndex int  // 1-based positional index when '*M$' was used; 0 for a plain '*'
}

// Directive is the fully parsed, fully resolved record of one "%...X" run.
type Directive struct {
	Consumed int // bytes of template consumed, including the leading '%'

	Flags Flags

	width     widthPrecision
	precision widthPrecision
	hasPrecision  bool // '.' was present at all
	sawRepeatFlag bool // a flag byte appeared more than once

	Length Length
	Type   Verb

	// Position is the 1-based positional argument index, or 0 for
	// sequential delivery.
	Position int

	// resolved width/precision, filled in after any '*' lookups and after
	// normalization (negative width folded into LeftJustify).
	Width     int
	Precision int // -1 means unspecified
}

// state names the stages of the per-directive state machine. It does
// not drive control flow, since this implementation resolves a
// directive in a single straight-line function, and the engine does
// not record it: no value of this type is set or rendered anywhere.
type state int

const (
	stateIdle state = iota
	stateParsed
	stateWidthResolved
	statePrecisionResolved
	stateNormalized
	stateEmitted
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "IDLE"
	case stateParsed:
		return "PARSED"
	case stateWidthResolved:
		return "WIDTH-RESOLVED"
	case statePrecisionResolved:
		return "PRECISION-RESOLVED"
	case stateNormalized:
		return "NORMALIZED"
	case stateEmitted:
		return "EMITTED"
	case stateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
