package printf

import "strconv"

// emitChar renders %c: one byte, space-padded to width, no precision
// (the normalizer already cleared it). A rune wider than a byte is
// truncated to its low byte — wide characters are out of scope.
func emitChar(s Sink, d *Directive, r rune) error {
	return padField(s, d, string([]byte{byte(r)}))
}

// emitString renders %s: up to precision bytes, or the whole string
// when precision is unspecified (-1). A nil argument renders as the
// literal "(null)" only when there's room to say so — precision
// unspecified or at least 6, the literal's length; a precision of 1
// to 5 emits that many leading bytes of it, and a precision small
// enough to avoid touching the string at all (0) accepts the null
// silently and emits nothing.
func emitString(s Sink, d *Directive, str string, isNil bool) error {
	if isNil {
		if d.Precision == 0 {
			return padField(s, d, "")
		}
		const null = "(null)"
		if d.Precision < 0 || d.Precision >= len(null) {
			return padField(s, d, null)
		}
		return padField(s, d, null[:d.Precision])
	}
	if d.Precision >= 0 && d.Precision < len(str) {
		str = str[:d.Precision]
	}
	return padField(s, d, str)
}

// emitPointer renders %p: hexadecimal with a mandatory "0x" prefix,
// width and left-justify only (no precision or sign flags — the
// normalizer already cleared those). A nil pointer renders as "(nil)".
func emitPointer(s Sink, d *Directive, ptr uintptr, isNil bool) error {
	if isNil {
		return padField(s, d, "(nil)")
	}
	return padField(s, d, "0x"+strconv.FormatUint(uint64(ptr), 16))
}

// emitCount implements %n: it writes characters_written-so-far through
// the target and emits no bytes of its own.
func emitCount(ct countTarget, written int64) error {
	return ct.store(int(written))
}

// padField applies width/justify (space-only — zero-pad never applies
// to c/s/p, the normalizer clears it) to an already-truncated string.
func padField(s Sink, d *Directive, str string) error {
	pad := d.Width - len(str)
	if pad < 0 {
		pad = 0
	}
	if d.Flags.LeftJustify {
		if err := writeStr(s, str); err != nil {
			return err
		}
		return writeRepeat(s, ' ', pad)
	}
	if err := writeRepeat(s, ' ', pad); err != nil {
		return err
	}
	return writeStr(s, str)
}
