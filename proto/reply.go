package proto

import (
	"strconv"
	"strings"
)

// ReplyKind discriminates the three shapes a response line can take.
type ReplyKind int

const (
	// ReplyPair is a "key: value" field line.
	ReplyPair ReplyKind = iota
	// ReplyOK is the terminal success marker ("OK" or "list_OK").
	ReplyOK
	// ReplyAck is the terminal error marker ("ACK ...").
	ReplyAck
)

// Pair is a single decoded field. Key and Value are reproduced
// byte-for-byte from the wire; field names are case-sensitive (the
// protocol mixes "file" and "Last-Modified" style keys).
type Pair struct {
	Key   string
	Value string
}

// Reply is one decoded response line. Exactly one response line
// terminates every response: an OK or an ACK.
type Reply struct {
	Kind ReplyKind
	Pair Pair         // valid when Kind == ReplyPair
	Ack  *ServerError // valid when Kind == ReplyAck
}

// ParseReply decodes a single response line (without the trailing
// newline). It returns a *ParseError for any line that is neither a
// terminal marker nor a well-formed "key: value" pair; malformed ACK
// payloads are likewise parse errors, never ignored.
func ParseReply(line string) (Reply, error) {
	switch {
	case line == "OK" || line == "list_OK":
		return Reply{Kind: ReplyOK}, nil
	case strings.HasPrefix(line, "ACK"):
		ack, err := parseAck(line)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Kind: ReplyAck, Ack: ack}, nil
	}

	key, value, found := strings.Cut(line, ": ")
	if !found {
		return Reply{}, &ParseError{Message: "malformed pair, missing \": \" separator", Input: line}
	}
	return Reply{Kind: ReplyPair, Pair: Pair{Key: key, Value: value}}, nil
}

// parseAck decodes the "ACK [code@index] {command} message" payload.
func parseAck(line string) (*ServerError, error) {
	rest, ok := strings.CutPrefix(line, "ACK [")
	if !ok {
		return nil, &ParseError{Message: "malformed ACK, missing [code@index]", Input: line}
	}

	bracket, rest, ok := strings.Cut(rest, "] ")
	if !ok {
		return nil, &ParseError{Message: "malformed ACK, unterminated [code@index]", Input: line}
	}

	codeText, indexText, ok := strings.Cut(bracket, "@")
	if !ok {
		return nil, &ParseError{Message: "malformed ACK, missing command index", Input: line}
	}
	code, err := strconv.Atoi(codeText)
	if err != nil {
		return nil, &ParseError{Message: "malformed ACK, bad error code", Input: line, Err: err}
	}
	if _, known := errorCodeNames[ErrorCode(code)]; !known {
		return nil, &ParseError{Message: "unknown ACK error code", Input: line}
	}
	index, err := strconv.Atoi(indexText)
	if err != nil {
		return nil, &ParseError{Message: "malformed ACK, bad command index", Input: line, Err: err}
	}

	rest, ok = strings.CutPrefix(rest, "{")
	if !ok {
		return nil, &ParseError{Message: "malformed ACK, missing {command}", Input: line}
	}
	command, message, ok := strings.Cut(rest, "}")
	if !ok {
		return nil, &ParseError{Message: "malformed ACK, unterminated {command}", Input: line}
	}
	message = strings.TrimPrefix(message, " ")

	return &ServerError{
		Code:    ErrorCode(code),
		Index:   index,
		Command: command,
		Message: message,
	}, nil
}
