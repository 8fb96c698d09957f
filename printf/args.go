package printf

import (
	"fmt"
	"reflect"
)

// cursor delivers arguments in sequential (pop-off-the-front) order, the
// discipline original_source/printf_arguments.c calls pop_* against a
// va_list. Go has no va_list: a plain slice index plays the same role,
// and unlike C it is already randomly addressable, which positional.go
// takes advantage of directly instead of re-deriving an index from a
// running pop count.
type cursor struct {
	args []any
	next int
}

func newCursor(args []any) *cursor { return &cursor{args: args} }

func (c *cursor) pop() (any, bool) {
	if c.next >= len(c.args) {
		return nil, false
	}
	v := c.args[c.next]
	c.next++
	return v, true
}

// popInt extracts a signed integer argument and re-narrows it to the width
// implied by length l, exactly as printf_arguments.c's comment describes:
// "the C standard says we must convert the popped off element of the
// va_list into the shorter length type before use even though they are
// automatically promoted to ints for the va_list. This is redundant, but
// we shall obey." Go never promotes, so the widen-then-truncate here exists
// purely to reproduce the promotion's observable truncation behavior.
func popInt(v any, l Length) (int64, error) {
	wide, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	return narrowSigned(wide, l), nil
}

func popUint(v any, l Length) (uint64, error) {
	wide, err := toUint64(v)
	if err != nil {
		return 0, err
	}
	return narrowUnsigned(wide, l), nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("printf: %w: expected integer, got %T", ErrArgType, v)
	}
}

func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case int:
		return uint64(n), nil
	case int8:
		return uint64(n), nil
	case int16:
		return uint64(n), nil
	case int32:
		return uint64(n), nil
	case int64:
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, fmt.Errorf("printf: %w: expected integer, got %T", ErrArgType, v)
	}
}

// narrowSigned re-narrows a widened value to the signed width l implies,
// sign-extending from the truncated bit pattern the way a real C cast does.
func narrowSigned(wide int64, l Length) int64 {
	switch l {
	case LengthHH:
		return int64(int8(wide))
	case LengthH:
		return int64(int16(wide))
	case LengthL, LengthLL, LengthJ, LengthZ, LengthT:
		return wide
	default: // LengthNone: promoted-to-int semantics
		return int64(int32(wide))
	}
}

func narrowUnsigned(wide uint64, l Length) uint64 {
	switch l {
	case LengthHH:
		return uint64(uint8(wide))
	case LengthH:
		return uint64(uint16(wide))
	case LengthL, LengthLL, LengthJ, LengthZ, LengthT:
		return wide
	default:
		return uint64(uint32(wide))
	}
}

func popString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("printf: %w: expected string, got %T", ErrArgType, v)
	}
}

func popRune(v any) (rune, error) {
	switch c := v.(type) {
	case rune: // == int32
		return c, nil
	case byte:
		return rune(c), nil
	case int:
		return rune(c), nil
	default:
		return 0, fmt.Errorf("printf: %w: expected character, got %T", ErrArgType, v)
	}
}

// popPointer renders %p's argument as a uintptr-shaped value, accepting
// any Go pointer-shaped value the way C accepts any `void *`.
func popPointer(v any) (uintptr, error) {
	if v == nil {
		return 0, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
		return rv.Pointer(), nil
	case reflect.Uintptr:
		return uintptr(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("printf: %w: expected pointer, got %T", ErrArgType, v)
	}
}

// countTarget is the destination %n writes characters_written through.
// POSIX writes through an int* (or, per length modifier, a
// narrower/wider pointer type); Go has no single pointer type that
// covers every width, so countTarget wraps whichever concrete
// integer-pointer type the caller passed and narrows the stored value
// to match, e.g. %hhn truncating to a signed byte.
type countTarget struct {
	ptr any
}

func popCountTarget(v any) (countTarget, error) {
	if v == nil {
		return countTarget{}, ErrNilNPointer
	}
	switch p := v.(type) {
	case *int:
		if p == nil {
			return countTarget{}, ErrNilNPointer
		}
	case *int8:
		if p == nil {
			return countTarget{}, ErrNilNPointer
		}
	case *int16:
		if p == nil {
			return countTarget{}, ErrNilNPointer
		}
	case *int32:
		if p == nil {
			return countTarget{}, ErrNilNPointer
		}
	case *int64:
		if p == nil {
			return countTarget{}, ErrNilNPointer
		}
	default:
		return countTarget{}, fmt.Errorf("printf: %w: expected an integer pointer for '%%n', got %T", ErrArgType, v)
	}
	return countTarget{ptr: v}, nil
}

// store narrows n to the pointer's own width and writes it through.
func (c countTarget) store(n int) error {
	switch p := c.ptr.(type) {
	case *int:
		*p = n
	case *int8:
		*p = int8(n)
	case *int16:
		*p = int16(n)
	case *int32:
		*p = int32(n)
	case *int64:
		*p = int64(n)
	default:
		return fmt.Errorf("printf: %w: invalid '%%n' target", ErrArgType)
	}
	return nil
}
