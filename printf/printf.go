package printf

import (
	"fmt"
	"io"
	"os"
)

// Policy tunes a behavior that POSIX leaves implementation-defined
// rather than hardwiring one choice. The zero value is the
// conservative default: a short descriptor write is treated as
// failure, never retried, and the growable/fixed sinks fall back to
// their built-in default capacities.
type Policy struct {
	// RetryShortWrites makes DprintfPolicy/VdprintfPolicy retry a short,
	// non-error write instead of failing. Off by default; Dprintf and
	// Vdprintf always use the default.
	RetryShortWrites bool

	// GrowableInitCap sets AsprintfPolicy/VasprintfPolicy's starting
	// buffer capacity. <= 0 falls back to the sink's built-in default.
	GrowableInitCap int

	// FixedDefaultCap sets the buffer size SprintfAuto allocates when a
	// caller wants a fixed-buffer render without sizing the buffer
	// itself. <= 0 falls back to a conservative built-in default.
	FixedDefaultCap int
}

// DefaultPolicy is the conservative default: do not retry short
// descriptor writes.
func DefaultPolicy() Policy { return Policy{} }

// Printf formats according to format and writes to standard output.
func Printf(format string, args ...any) (int, error) {
	return Vfprintf(os.Stdout, format, args)
}

// Vprintf is Printf with an already-built argument slice, the Go
// analogue of vprintf taking a va_list.
func Vprintf(format string, args []any) (int, error) {
	return Vfprintf(os.Stdout, format, args)
}

// Fprintf formats according to format and writes to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return Vfprintf(w, format, args)
}

// Vfprintf is Fprintf with an already-built argument slice.
func Vfprintf(w io.Writer, format string, args []any) (int, error) {
	sink := newStreamSink(w)
	n, err := run(format, args, sink)
	if err != nil {
		return -1, err
	}
	if ferr := sink.flush(); ferr != nil {
		return -1, ferr
	}
	return int(n), nil
}

// Sprintf formats into buf, whose own length stands in for the C
// sprintf's implicit "the caller guarantees enough room" contract —
// unlike a raw char*, a Go []byte always carries a definite length, so
// len(buf) already is that guarantee.
func Sprintf(buf []byte, format string, args ...any) (int, error) {
	return Vsnprintf(buf, len(buf), format, args)
}

// Vsprintf is Sprintf with an already-built argument slice.
func Vsprintf(buf []byte, format string, args []any) (int, error) {
	return Vsnprintf(buf, len(buf), format, args)
}

// Snprintf formats into buf, writing at most limit-1 bytes and reserving
// the final slot for a NUL terminator, exactly like C snprintf. It
// returns the length that would have been written to an unbounded
// buffer, regardless of how much was actually truncated.
func Snprintf(buf []byte, limit int, format string, args ...any) (int, error) {
	return Vsnprintf(buf, limit, format, args)
}

// Vsnprintf is Snprintf with an already-built argument slice.
func Vsnprintf(buf []byte, limit int, format string, args []any) (int, error) {
	if limit > len(buf) {
		limit = len(buf)
	}
	if limit < 0 {
		limit = 0
	}
	sink := newFixedSink(buf, limit)
	n, err := run(format, args, sink)
	if err != nil {
		return -1, err
	}
	sink.terminate()
	return int(n), nil
}

// Asprintf formats into a freshly allocated, owned buffer and returns it
// as a string alongside an ok flag, since a Go string has no null value
// to signal failure through the way an out-parameter pointer would.
func Asprintf(format string, args ...any) (string, bool) {
	return Vasprintf(format, args)
}

// Vasprintf is Asprintf with an already-built argument slice.
func Vasprintf(format string, args []any) (string, bool) {
	return VasprintfPolicy(DefaultPolicy(), format, args)
}

// AsprintfPolicy is Asprintf with an explicit Policy, whose
// GrowableInitCap chooses the buffer's starting capacity instead of the
// sink's built-in default.
func AsprintfPolicy(p Policy, format string, args ...any) (string, bool) {
	return VasprintfPolicy(p, format, args)
}

// VasprintfPolicy is Asprintf with an explicit Policy and an
// already-built argument slice.
func VasprintfPolicy(p Policy, format string, args []any) (string, bool) {
	sink := newGrowableSink(p.GrowableInitCap)
	if _, err := run(format, args, sink); err != nil {
		return "", false
	}
	return string(sink.bytes()), true
}

// defaultFixedCap is SprintfAuto's fallback buffer size when a Policy
// doesn't specify FixedDefaultCap (or specifies one <= 0).
const defaultFixedCap = 4096

// SprintfAuto formats into a freshly allocated fixed-size buffer sized
// by p.FixedDefaultCap, the snprintf-family counterpart to Asprintf's
// growable buffer for callers who want a bounded render without sizing
// a buffer themselves. It returns the rendered (possibly truncated)
// string alongside the full unbounded length, exactly as Vsnprintf's
// return value convention describes.
func SprintfAuto(p Policy, format string, args ...any) (string, int, error) {
	size := p.FixedDefaultCap
	if size <= 0 {
		size = defaultFixedCap
	}
	buf := make([]byte, size)
	n, err := Vsnprintf(buf, size, format, args)
	if err != nil {
		return "", -1, err
	}
	end := n
	if end > size-1 {
		end = size - 1
	}
	if end < 0 {
		end = 0
	}
	return string(buf[:end]), n, nil
}

// Dprintf formats and writes to a raw file descriptor, using the
// conservative default policy (short writes fail, are not retried).
// DprintfPolicy lets a caller choose the retry policy instead.
func Dprintf(fd int, format string, args ...any) (int, error) {
	return VdprintfPolicy(DefaultPolicy(), fd, format, args)
}

// Vdprintf is Dprintf with an already-built argument slice.
func Vdprintf(fd int, format string, args []any) (int, error) {
	return VdprintfPolicy(DefaultPolicy(), fd, format, args)
}

// DprintfPolicy is Dprintf with an explicit Policy.
func DprintfPolicy(p Policy, fd int, format string, args ...any) (int, error) {
	return VdprintfPolicy(p, fd, format, args)
}

// VdprintfPolicy is Dprintf with an explicit Policy and an already-built
// argument slice.
func VdprintfPolicy(p Policy, fd int, format string, args []any) (int, error) {
	f := os.NewFile(uintptr(fd), fmt.Sprintf("fd%d", fd))
	if f == nil {
		return -1, fmt.Errorf("printf: invalid file descriptor %d", fd)
	}
	sink := newDescriptorSink(f, p.RetryShortWrites)
	n, err := run(format, args, sink)
	if err != nil {
		return -1, err
	}
	return int(n), nil
}
