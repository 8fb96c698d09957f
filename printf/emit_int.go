package printf

// emitInteger renders d/i/u/o/x/X per spec section 4.4: a scratch digit
// buffer written least-significant-digit first, then a composition step
// that applies precision zero-extension, sign/prefix, and width padding.
// 64 digits comfortably covers any supported width in any base >= 8.
func emitInteger(s Sink, d *Directive, signed int64, unsigned uint64) error {
	var digits [64]byte
	n := 0

	base := uint64(10)
	upper := false
	switch d.Type {
	case VerbO:
		base = 8
	case VerbX:
		base = 16
	case VerbXUpper:
		base = 16
		upper = true
	}

	neg := false
	var mag uint64
	if d.Type.isUnsigned() {
		mag = unsigned
	} else if signed < 0 {
		neg = true
		// Safe for the most-negative signed value: negate the
		// magnitude one unit short, then add the unit back as an
		// unsigned value, never negating the original directly.
		mag = uint64(-(signed+1)) + 1
	} else {
		mag = uint64(signed)
	}

	if mag == 0 {
		if d.Precision != 0 {
			digits[n] = '0'
			n++
		}
	} else {
		for mag > 0 {
			r := byte(mag % base)
			switch {
			case r < 10:
				digits[n] = '0' + r
			case upper:
				digits[n] = 'A' + (r - 10)
			default:
				digits[n] = 'a' + (r - 10)
			}
			n++
			mag /= base
		}
	}

	minDigits := d.Precision
	if minDigits < 0 {
		minDigits = 1
	}
	for n < minDigits && n < len(digits) {
		digits[n] = '0'
		n++
	}

	if d.Type == VerbO && d.Flags.AlternateForm && (n == 0 || digits[n-1] != '0') {
		digits[n] = '0'
		n++
	}

	var prefix string
	if !d.Type.isUnsigned() {
		switch {
		case neg:
			prefix = "-"
		case d.Flags.AlwaysSign:
			prefix = "+"
		case d.Flags.SpaceSign:
			prefix = " "
		}
	}
	if d.Flags.AlternateForm {
		switch d.Type {
		case VerbX:
			prefix += "0x"
		case VerbXUpper:
			prefix += "0X"
		}
	}

	return composeField(s, d.Flags.LeftJustify, d.Flags.ZeroPad, d.Width, prefix, digits[:n])
}

// composeField lays out [sign/prefix][padding][digits] (or the reverse,
// for left-justification), per spec section 4.4's padding rules:
// zero-fill lands between the prefix and the digits; space-fill lands
// outside the whole field, before it when right-justified and after it
// when left-justified.
func composeField(s Sink, leftJustify, zeroPad bool, width int, prefix string, digits []byte) error {
	total := len(prefix) + len(digits)
	pad := width - total
	if pad < 0 {
		pad = 0
	}
	switch {
	case leftJustify:
		if err := writeStr(s, prefix); err != nil {
			return err
		}
		if err := writeDigits(s, digits); err != nil {
			return err
		}
		return writeRepeat(s, ' ', pad)
	case zeroPad:
		if err := writeStr(s, prefix); err != nil {
			return err
		}
		if err := writeRepeat(s, '0', pad); err != nil {
			return err
		}
		return writeDigits(s, digits)
	default:
		if err := writeRepeat(s, ' ', pad); err != nil {
			return err
		}
		if err := writeStr(s, prefix); err != nil {
			return err
		}
		return writeDigits(s, digits)
	}
}

// writeDigits emits a least-significant-digit-first scratch buffer in
// its natural, most-significant-first reading order.
func writeDigits(s Sink, digits []byte) error {
	for i := len(digits) - 1; i >= 0; i-- {
		if err := writeByte(s, digits[i]); err != nil {
			return err
		}
	}
	return nil
}
