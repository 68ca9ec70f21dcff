package proto

import (
	"bufio"
	"io"
	"strings"
)

// Pairs streams the key/value fields of one response, terminating when
// the response's OK or ACK marker (or the underlying reader) is
// reached. It is consumed scanner-style:
//
//	ps := proto.NewPairs(r)
//	for ps.Next() {
//		p := ps.Pair()
//		...
//	}
//	if err := ps.Err(); err != nil {
//		...
//	}
//
// Err returns nil after a clean OK termination, the *ServerError after
// an ACK, and the transport or parse error otherwise. A Pairs owns the
// connection's read position: it must be run to termination before the
// next command is issued, or the following response will be misread.
type Pairs struct {
	r    *bufio.Reader
	cur  Pair
	err  error
	done bool
}

// NewPairs returns a pair stream reading one response from r.
func NewPairs(r *bufio.Reader) *Pairs {
	return &Pairs{r: r}
}

// Next advances to the next field pair. It returns false at the
// response's terminal marker, on exhaustion of the reader, and on any
// error; once false it stays false.
func (ps *Pairs) Next() bool {
	if ps.done {
		return false
	}

	line, err := ps.r.ReadString('\n')
	if err != nil {
		// A bare EOF with no partial line is clean exhaustion of the
		// source. A partial line is still decoded below.
		if err != io.EOF || line == "" {
			ps.done = true
			if err != io.EOF {
				ps.err = err
			}
			return false
		}
	}
	line = strings.TrimSuffix(line, "\n")

	reply, err := ParseReply(line)
	if err != nil {
		ps.done = true
		ps.err = err
		return false
	}

	switch reply.Kind {
	case ReplyOK:
		ps.done = true
		return false
	case ReplyAck:
		ps.done = true
		ps.err = reply.Ack
		return false
	}

	ps.cur = reply.Pair
	return true
}

// Pair returns the pair read by the last successful call to Next.
func (ps *Pairs) Pair() Pair {
	return ps.cur
}

// Err returns the error that terminated the stream, or nil if the
// stream ended at a success marker (or source exhaustion).
func (ps *Pairs) Err() error {
	return ps.err
}
