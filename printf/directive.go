package printf

import (
	"fmt"
	"strconv"
)

// parser walks a template byte-by-byte, producing one Directive per '%'
// run: a single forward scan, no backtracking.
type parser struct {
	template string
	pos      int
	positional bool // true once any directive has used N$
	sequential bool // true once any directive has NOT used N$
	nextSeq    int  // next 1-based sequential position to assign
}

func newParser(template string) *parser {
	return &parser{template: template, nextSeq: 1}
}

// literal returns the longest run of plain bytes starting at p.pos, i.e.
// everything up to (not including) the next '%' or end of string.
func (p *parser) literal() string {
	start := p.pos
	for p.pos < len(p.template) && p.template[p.pos] != '%' {
		p.pos++
	}
	return p.template[start:p.pos]
}

func (p *parser) atEnd() bool { return p.pos >= len(p.template) }

// next parses one directive starting at the '%' byte. It returns
// (Directive{}, false, nil) if the template is exhausted, and an error if
// the grammar is violated (e.g. trailing '%' with nothing after it).
func (p *parser) next() (Directive, bool, error) {
	if p.atEnd() {
		return Directive{}, false, nil
	}
	start := p.pos
	if p.template[p.pos] != '%' {
		return Directive{}, false, fmt.Errorf("printf: internal: next called mid-literal")
	}
	p.pos++ // consume '%'

	if p.pos < len(p.template) && p.template[p.pos] == '%' {
		p.pos++
		d := Directive{Type: VerbNone, Consumed: p.pos - start}
		return d, true, nil
	}

	d := Directive{Width: -1, Precision: -1}

	// positional "N$"
	if n, rest, ok := p.scanPositional(p.pos); ok {
		d.Position = n
		p.pos = rest
		p.positional = true
	} else {
		p.sequential = true
	}

	// flags
	for !p.atEnd() {
		switch p.template[p.pos] {
		case '-':
			if d.Flags.LeftJustify {
				d.sawRepeatFlag = true
			}
			d.Flags.LeftJustify = true
		case '+':
			if d.Flags.AlwaysSign {
				d.sawRepeatFlag = true
			}
			d.Flags.AlwaysSign = true
		case ' ':
			if d.Flags.SpaceSign {
				d.sawRepeatFlag = true
			}
			d.Flags.SpaceSign = true
		case '#':
			if d.Flags.AlternateForm {
				d.sawRepeatFlag = true
			}
			d.Flags.AlternateForm = true
		case '0':
			if d.Flags.ZeroPad {
				d.sawRepeatFlag = true
			}
			d.Flags.ZeroPad = true
		default:
			goto doneFlags
		}
		p.pos++
	}
doneFlags:

	// width
	if !p.atEnd() && p.template[p.pos] == '*' {
		p.pos++
		if n, rest, ok := p.scanPositional(p.pos); ok {
			d.width = widthPrecision{fromArg: true, argIndex: n}
			p.pos = rest
		} else {
			d.width = widthPrecision{fromArg: true, argIndex: 0}
		}
	} else if n, rest, ok := p.scanDigits(p.pos); ok {
		d.width = widthPrecision{literal: n}
		p.pos = rest
	}

	// precision
	if !p.atEnd() && p.template[p.pos] == '.' {
		p.pos++
		d.hasPrecision = true
		if !p.atEnd() && p.template[p.pos] == '*' {
			p.pos++
			if n, rest, ok := p.scanPositional(p.pos); ok {
				d.precision = widthPrecision{fromArg: true, argIndex: n}
				p.pos = rest
			} else {
				d.precision = widthPrecision{fromArg: true, argIndex: 0}
			}
		} else if n, rest, ok := p.scanDigits(p.pos); ok {
			d.precision = widthPrecision{literal: n}
			p.pos = rest
		} else {
			d.precision = widthPrecision{literal: 0}
		}
	}

	// length modifier
	d.Length = p.scanLength()

	// conversion type
	if p.atEnd() {
		return Directive{}, false, fmt.Errorf("printf: %w: dangling '%%' at end of template", ErrUnknownType)
	}
	verb, err := verbFromByte(p.template[p.pos])
	if err != nil {
		return Directive{}, false, err
	}
	p.pos++
	d.Type = verb
	d.Consumed = p.pos - start

	if d.Position == 0 && p.positional {
		// Mixing sequential and positional directives is a hard error,
		// detected definitively by scanTemplate in engine.go; here
		// we only need to remember both flags were seen.
	}

	return d, true, nil
}

func (p *parser) scanDigits(at int) (int, int, bool) {
	start := at
	for at < len(p.template) && p.template[at] >= '0' && p.template[at] <= '9' {
		at++
	}
	if at == start {
		return 0, at, false
	}
	n, err := strconv.Atoi(p.template[start:at])
	if err != nil {
		return 0, at, false
	}
	return n, at, true
}

// scanPositional scans "N$" starting at `at`. It returns ok=false (with no
// side effects on its caller) if there is no digit run, or if the digit
// run is not followed by '$' — in which case the caller must treat the
// digits as a width/precision literal instead.
func (p *parser) scanPositional(at int) (int, int, bool) {
	n, after, ok := p.scanDigits(at)
	if !ok || after >= len(p.template) || p.template[after] != '$' {
		return 0, at, false
	}
	return n, after + 1, true
}

func (p *parser) scanLength() Length {
	if p.atEnd() {
		return LengthNone
	}
	switch p.template[p.pos] {
	case 'h':
		if p.pos+1 < len(p.template) && p.template[p.pos+1] == 'h' {
			p.pos += 2
			return LengthHH
		}
		p.pos++
		return LengthH
	case 'l':
		if p.pos+1 < len(p.template) && p.template[p.pos+1] == 'l' {
			p.pos += 2
			return LengthLL
		}
		p.pos++
		return LengthL
	case 'j':
		p.pos++
		return LengthJ
	case 'z':
		p.pos++
		return LengthZ
	case 't':
		p.pos++
		return LengthT
	case 'L':
		p.pos++
		return LengthCapitalL
	default:
		return LengthNone
	}
}

func verbFromByte(b byte) (Verb, error) {
	switch b {
	case 'd':
		return VerbD, nil
	case 'i':
		return VerbI, nil
	case 'u':
		return VerbU, nil
	case 'o':
		return VerbO, nil
	case 'x':
		return VerbX, nil
	case 'X':
		return VerbXUpper, nil
	case 'f':
		return VerbF, nil
	case 'F':
		return VerbFUpper, nil
	case 'e':
		return VerbE, nil
	case 'E':
		return VerbEUpper, nil
	case 'g':
		return VerbG, nil
	case 'G':
		return VerbGUpper, nil
	case 'a':
		return VerbA, nil
	case 'A':
		return VerbAUpper, nil
	case 'c':
		return VerbC, nil
	case 's':
		return VerbS, nil
	case 'p':
		return VerbP, nil
	case 'n':
		return VerbN, nil
	default:
		return VerbError, fmt.Errorf("printf: %w: '%%%c'", ErrUnknownType, b)
	}
}
