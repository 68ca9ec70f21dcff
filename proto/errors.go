package proto

import (
	"fmt"
	"strconv"
)

// Error types for the MPD wire protocol.
//
// Three failure families reach callers: transport errors (returned
// untouched from the underlying net.Conn), parse errors (the client
// could not decode a server line), and server errors (the server
// rejected a command with an ACK reply). Callers distinguish them with
// errors.As, so "the server said no" is never confused with "the
// stream is broken".

// ErrorCode is the numeric error class carried by an ACK reply.
// The set is fixed by the protocol; an unrecognized code is treated as
// a parse error rather than passed through silently.
type ErrorCode int

const (
	ErrorNotList       ErrorCode = 1
	ErrorArgument      ErrorCode = 2
	ErrorPassword      ErrorCode = 3
	ErrorPermission    ErrorCode = 4
	ErrorUnknownCmd    ErrorCode = 5
	ErrorNoExist       ErrorCode = 50
	ErrorPlaylistMax   ErrorCode = 51
	ErrorSystem        ErrorCode = 52
	ErrorPlaylistLoad  ErrorCode = 53
	ErrorUpdateAlready ErrorCode = 54
	ErrorPlayerSync    ErrorCode = 55
	ErrorExist         ErrorCode = 56
)

var errorCodeNames = map[ErrorCode]string{
	ErrorNotList:       "not a list",
	ErrorArgument:      "invalid argument",
	ErrorPassword:      "invalid password",
	ErrorPermission:    "permission denied",
	ErrorUnknownCmd:    "unknown command",
	ErrorNoExist:       "object not found",
	ErrorPlaylistMax:   "playlist overflow",
	ErrorSystem:        "system error",
	ErrorPlaylistLoad:  "playlist load error",
	ErrorUpdateAlready: "update already running",
	ErrorPlayerSync:    "player synchronization error",
	ErrorExist:         "object already exists",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "error " + strconv.Itoa(int(c))
}

// ServerError is a structured ACK reply: the server rejected a command.
// The connection's protocol state remains valid; the failed response is
// terminated by the ACK line itself.
type ServerError struct {
	Code    ErrorCode
	Index   int    // position of the failing command in a command list
	Command string // name of the failing command, may be empty
	Message string // free-text explanation from the server
}

func (e *ServerError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("mpd: %s (command %q): %s", e.Code, e.Command, e.Message)
	}
	return fmt.Sprintf("mpd: %s: %s", e.Code, e.Message)
}

// ParseError reports a server line (or field value) the client could
// not decode. The protocol state is uncertain afterwards; callers
// should not continue reading the same response.
type ParseError struct {
	Message string
	Input   string // the offending text, verbatim
	Err     error  // underlying error, if any
}

func (e *ParseError) Error() string {
	s := "mpd: parse error: " + e.Message
	if e.Input != "" {
		s += ": " + strconv.Quote(e.Input)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ProtoError reports a protocol contract violation on the client side:
// a reply of the wrong shape, a missing required field, or an operation
// attempted in a state that forbids it.
type ProtoError struct {
	Message string
}

func (e *ProtoError) Error() string {
	return "mpd: " + e.Message
}
