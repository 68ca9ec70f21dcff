package mpd

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/htkhiem/mpd/proto"
)

var (
	// ErrClosed is returned for operations on a closed connection.
	ErrClosed = errors.New("mpd: connection closed")

	// ErrIdling is returned when a command is attempted while an idle
	// guard holds the connection. Resolve or close the guard first.
	ErrIdling = errors.New("mpd: connection is idling, resolve the idle guard first")
)

// Client is a connection to an MPD server.
//
// The protocol is strictly half-duplex: one request at a time, and
// every response must be read to its terminal marker before the next
// command. Client methods uphold this internally; the connection is
// not safe for concurrent use.
type Client struct {
	conn    net.Conn
	r       *bufio.Reader
	version Version
	idling  bool
	closed  bool
}

// Dial connects to the MPD server at addr ("tcp" host:port or "unix"
// socket path) and performs the protocol handshake.
func Dial(network, addr string) (*Client, error) {
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, err
	}
	return NewClient(conn)
}

// DialTimeout is Dial with a connect timeout.
func DialTimeout(network, addr string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout(network, addr, timeout)
	if err != nil {
		return nil, err
	}
	return NewClient(conn)
}

// NewClient wraps an established connection and reads the server
// banner ("OK MPD <version>"). On handshake failure the connection is
// closed.
func NewClient(conn net.Conn) (*Client, error) {
	c := &Client{conn: conn, r: bufio.NewReader(conn)}

	banner, err := c.readLine()
	if err != nil {
		conn.Close()
		return nil, err
	}
	rest, ok := strings.CutPrefix(banner, "OK MPD ")
	if !ok {
		conn.Close()
		return nil, &proto.ParseError{Message: "unexpected server banner", Input: banner}
	}
	version, err := ParseVersion(rest)
	if err != nil {
		conn.Close()
		return nil, err
	}

	c.version = version
	return c, nil
}

// Version reports the protocol version announced in the server banner.
func (c *Client) Version() Version {
	return c.version
}

// Close sends the protocol's close command (best effort) and tears
// down the connection. Safe to call more than once.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	_ = c.writeLine("close")
	return c.conn.Close()
}

// Ping checks that the connection is alive and in a clean state.
func (c *Client) Ping() error {
	return c.okCmd("ping")
}

// Password authenticates against a password-protected server.
func (c *Client) Password(password string) error {
	return c.okCmd("password", proto.Quoted(password))
}

// command serializes and sends one command line, enforcing the
// connection state rules.
func (c *Client) command(name string, args ...any) error {
	if c.closed {
		return ErrClosed
	}
	if c.idling {
		return ErrIdling
	}
	return c.writeCommand(name, args...)
}

// writeCommand bypasses the state checks; the idle guard uses it to
// send the interrupt command while the connection is idling.
func (c *Client) writeCommand(name string, args ...any) error {
	var buf bytes.Buffer
	if err := proto.AppendCommand(&buf, name, args...); err != nil {
		return err
	}
	if _, err := c.conn.Write(buf.Bytes()); err != nil {
		c.closed = true
		return err
	}
	return nil
}

func (c *Client) writeLine(line string) error {
	_, err := c.conn.Write([]byte(line + "\n"))
	return err
}

// okCmd runs a command whose whole response is the terminal marker.
func (c *Client) okCmd(name string, args ...any) error {
	if err := c.command(name, args...); err != nil {
		return err
	}
	return c.expectOK()
}

func (c *Client) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// expectOK consumes the terminal marker of a response that carries no
// fields.
func (c *Client) expectOK() error {
	line, err := c.readLine()
	if err != nil {
		return err
	}
	reply, err := proto.ParseReply(line)
	if err != nil {
		return err
	}
	switch reply.Kind {
	case proto.ReplyOK:
		return nil
	case proto.ReplyAck:
		return reply.Ack
	default:
		return &proto.ProtoError{Message: "expected end of response, got field " + reply.Pair.Key}
	}
}

// readPair consumes a response consisting of exactly one field line.
func (c *Client) readPair() (proto.Pair, error) {
	line, err := c.readLine()
	if err != nil {
		return proto.Pair{}, err
	}
	reply, err := proto.ParseReply(line)
	if err != nil {
		return proto.Pair{}, err
	}
	switch reply.Kind {
	case proto.ReplyPair:
		return reply.Pair, nil
	case proto.ReplyAck:
		return proto.Pair{}, reply.Ack
	default:
		return proto.Pair{}, &proto.ProtoError{Message: "expected a field, got end of response"}
	}
}

// readField reads a single-field response and requires the given key.
func (c *Client) readField(field string) (string, error) {
	pair, err := c.readPair()
	if err != nil {
		return "", err
	}
	if err := c.expectOK(); err != nil {
		return "", err
	}
	if pair.Key != field {
		return "", &proto.ProtoError{Message: "response is missing field " + field}
	}
	return pair.Value, nil
}

// readList collects the values of every field named key, ignoring
// other fields, up to the terminal marker.
func (c *Client) readList(key string) ([]string, error) {
	ps := c.pairs()
	var values []string
	for ps.Next() {
		if p := ps.Pair(); p.Key == key {
			values = append(values, p.Value)
		}
	}
	if err := ps.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// pairs starts streaming the current response.
func (c *Client) pairs() *proto.Pairs {
	return proto.NewPairs(c.r)
}

// drain discards the rest of the current response, up to and including
// its terminal success or error marker. Leaving a response partially
// read would misalign every following response.
func (c *Client) drain() error {
	for {
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if line == "OK" || line == "list_OK" || strings.HasPrefix(line, "ACK") {
			return nil
		}
	}
}
