package proto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Argument serialization is push-based: values emit their wire tokens
// one at a time through a callback, so composite argument lists of
// unknown arity flatten without intermediate buffers. Serialization
// itself is total on supported kinds; only emit errors propagate.

// Argser is implemented by domain values that know their own wire
// token(s): enums with fixed wire names, song ids, ranges, and the
// like.
type Argser interface {
	Args(emit func(token string) error) error
}

// Quoted marks a textual argument that must be wrapped in double
// quotes on the wire, with backslash and quote characters escaped.
// Use it for any value that may contain spaces or quotes (URIs,
// playlist names, search terms).
type Quoted string

// Quote returns s wrapped in double quotes with `\` and `"` escaped.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// WriteArgs serializes each argument in order, emitting one wire token
// per call. Booleans render as the protocol's 0/1, durations as whole
// seconds, slices element by element. An unsupported argument type is
// a programming error and reported as a *ProtoError.
func WriteArgs(emit func(token string) error, args ...any) error {
	for _, arg := range args {
		if err := writeArg(emit, arg); err != nil {
			return err
		}
	}
	return nil
}

func writeArg(emit func(token string) error, arg any) error {
	switch v := arg.(type) {
	case nil:
		return nil
	case Argser:
		return v.Args(emit)
	case Quoted:
		return emit(Quote(string(v)))
	case string:
		return emit(v)
	case bool:
		if v {
			return emit("1")
		}
		return emit("0")
	case int:
		return emit(strconv.Itoa(v))
	case int8:
		return emit(strconv.FormatInt(int64(v), 10))
	case int16:
		return emit(strconv.FormatInt(int64(v), 10))
	case int32:
		return emit(strconv.FormatInt(int64(v), 10))
	case int64:
		return emit(strconv.FormatInt(v, 10))
	case uint:
		return emit(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return emit(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return emit(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return emit(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return emit(strconv.FormatUint(v, 10))
	case float32:
		return emit(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return emit(strconv.FormatFloat(v, 'f', -1, 64))
	case time.Duration:
		return emit(strconv.FormatInt(int64(v/time.Second), 10))
	case []string:
		for _, s := range v {
			if err := emit(s); err != nil {
				return err
			}
		}
		return nil
	case []any:
		return WriteArgs(emit, v...)
	default:
		return &ProtoError{Message: fmt.Sprintf("unsupported argument type %T", arg)}
	}
}

// AppendCommand builds a full command line onto buf: the command name,
// one space-separated token per argument, and the trailing newline.
func AppendCommand(buf *bytes.Buffer, name string, args ...any) error {
	buf.WriteString(name)
	err := WriteArgs(func(token string) error {
		buf.WriteByte(' ')
		buf.WriteString(token)
		return nil
	}, args...)
	if err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}
